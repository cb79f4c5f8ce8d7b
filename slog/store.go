package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akulov/progadvisor"
)

// Ensure LoggingProgramStore implements progadvisor.ProgramStore.
var _ progadvisor.ProgramStore = (*LoggingProgramStore)(nil)

// LoggingProgramStore wraps a ProgramStore with operation logging.
type LoggingProgramStore struct {
	next   progadvisor.ProgramStore
	logger *slog.Logger
}

// NewLoggingProgramStore creates a new LoggingProgramStore.
func NewLoggingProgramStore(next progadvisor.ProgramStore, logger *slog.Logger) *LoggingProgramStore {
	return &LoggingProgramStore{next: next, logger: logger}
}

// LoadPrograms delegates to the wrapped store and logs the operation.
func (s *LoggingProgramStore) LoadPrograms(ctx context.Context) (programs map[string]*progadvisor.Program, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load programs",
			"count", len(programs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadPrograms(ctx)
}

// SavePrograms delegates to the wrapped store and logs the operation.
func (s *LoggingProgramStore) SavePrograms(ctx context.Context, programs map[string]*progadvisor.Program) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save programs",
			"count", len(programs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SavePrograms(ctx, programs)
}
