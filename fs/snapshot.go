// Package fs provides file-based snapshot storage for ingested programs.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/akulov/progadvisor"
)

// Ensure SnapshotStore implements progadvisor.ProgramStore at compile time.
var _ progadvisor.ProgramStore = (*SnapshotStore)(nil)

// SnapshotStore persists the program map as a single JSON document.
// Writes go to a uniquely named temp file first and are renamed into
// place, so readers either see the previous snapshot or the new one, and
// the last successful write wins.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a store backed by the given file path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// LoadPrograms reads the whole snapshot.
// Returns ENOTFOUND when no snapshot has been written yet.
func (s *SnapshotStore) LoadPrograms(ctx context.Context) (map[string]*progadvisor.Program, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, progadvisor.Errorf(progadvisor.ENOTFOUND, "no snapshot at %s", s.path)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	programs := make(map[string]*progadvisor.Program)
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return programs, nil
}

// SavePrograms replaces the snapshot wholesale.
func (s *SnapshotStore) SavePrograms(ctx context.Context, programs map[string]*progadvisor.Program) error {
	for _, p := range programs {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(programs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	// Unique temp name keeps a crashed previous writer from being
	// overwritten mid-flight.
	tmp := filepath.Join(dir, filepath.Base(s.path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
