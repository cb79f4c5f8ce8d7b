package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akulov/progadvisor"
)

// Compile-time interface verification.
var _ progadvisor.ProgramStore = (*ProgramStore)(nil)

// ProgramStore implements progadvisor.ProgramStore using SQLite.
type ProgramStore struct {
	db *DB
}

// NewProgramStore creates a new ProgramStore.
func NewProgramStore(db *DB) *ProgramStore {
	return &ProgramStore{db: db}
}

// LoadPrograms reads the whole snapshot.
// Returns ENOTFOUND when no programs have been ingested yet.
func (s *ProgramStore) LoadPrograms(ctx context.Context) (map[string]*progadvisor.Program, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, name, url, text_chunks, courses
		FROM programs
		ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make(map[string]*progadvisor.Program)
	for rows.Next() {
		var p progadvisor.Program
		var chunksJSON, coursesJSON string
		if err := rows.Scan(&p.Key, &p.Name, &p.URL, &chunksJSON, &coursesJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(chunksJSON), &p.TextChunks); err != nil {
			return nil, fmt.Errorf("decode text_chunks for %q: %w", p.Key, err)
		}
		if err := json.Unmarshal([]byte(coursesJSON), &p.Courses); err != nil {
			return nil, fmt.Errorf("decode courses for %q: %w", p.Key, err)
		}
		programs[p.Key] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(programs) == 0 {
		return nil, progadvisor.Errorf(progadvisor.ENOTFOUND, "no programs ingested")
	}
	return programs, nil
}

// SavePrograms replaces the snapshot wholesale in one transaction.
func (s *ProgramStore) SavePrograms(ctx context.Context, programs map[string]*progadvisor.Program) error {
	for _, p := range programs {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM programs`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range programs {
		chunksJSON, err := json.Marshal(p.TextChunks)
		if err != nil {
			return err
		}
		coursesJSON, err := json.Marshal(p.Courses)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO programs (key, name, url, text_chunks, courses, ingested_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.Key, p.Name, p.URL, string(chunksJSON), string(coursesJSON), now); err != nil {
			return err
		}
	}

	return tx.Commit()
}
