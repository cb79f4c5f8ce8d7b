package progadvisor

import "context"

// Program is the ingested representation of one degree program.
type Program struct {
	// Key is the short program identifier (e.g. "ai", "ai_product"),
	// unique across the snapshot and used as a partition key everywhere.
	Key string `json:"key"`

	// Name is the human-readable title, taken from the first non-empty
	// heading of the program page.
	Name string `json:"name"`

	// URL is the canonical source page.
	URL string `json:"url"`

	// TextChunks holds the normalized retrieval fragments in document
	// order, each bounded by the configured maximum chunk length and
	// deduplicated case-insensitively.
	TextChunks []string `json:"text_chunks"`

	// Courses holds heuristically extracted course titles. May be empty;
	// consumers fall back to mid-length chunks as pseudo-course names.
	Courses []string `json:"courses"`
}

// Validate returns an error if the program contains invalid fields.
func (p *Program) Validate() error {
	if p.Key == "" {
		return Errorf(EINVALID, "program key required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "program source URL required")
	}
	return nil
}

// ProgramStore persists the ingested program snapshot. The snapshot is a
// single document keyed by program key, read in full and written in full;
// the last successful write wins.
type ProgramStore interface {
	// LoadPrograms reads the whole snapshot.
	// Returns ENOTFOUND if no snapshot has been written yet.
	LoadPrograms(ctx context.Context) (map[string]*Program, error)

	// SavePrograms replaces the snapshot wholesale.
	SavePrograms(ctx context.Context, programs map[string]*Program) error
}

// Ingestor builds program records from their source pages.
type Ingestor interface {
	// IngestAll fetches and processes every configured program, persists
	// the resulting snapshot, and returns it. A hard failure on a main
	// program page aborts the run.
	IngestAll(ctx context.Context) (map[string]*Program, error)

	// LoadOrIngest returns the persisted snapshot when one exists, and
	// performs a full IngestAll otherwise.
	LoadOrIngest(ctx context.Context) (map[string]*Program, error)
}
