package progadvisor

import "time"

// Store backends selectable via Config.Store.
const (
	StoreSnapshot = "snapshot"
	StoreSQLite   = "sqlite"
)

// Text extractor implementations selectable via Config.Extractor.
const (
	ExtractorVisible = "visible" // full visible page text
	ExtractorArticle = "article" // main-content extraction
)

// Config holds the tunable parameters of the assistant. The retrieval
// constants (chunk length, relevance threshold, answer top-K) have no
// principled derivation; they are exposed here as configuration rather
// than baked in.
type Config struct {
	// MaxChunkLen is the maximum chunk length in characters.
	MaxChunkLen int

	// RelevanceThreshold is the minimum cosine similarity below which a
	// question is declared off-topic. Must be in (0, 1]: the index treats
	// zero as unset and falls back to the default.
	RelevanceThreshold float64

	// TopK is the number of chunks concatenated into an answer.
	TopK int

	// MinDocFreq is the minimum number of chunks a term must appear in to
	// enter the index vocabulary.
	MinDocFreq int

	// MaxDocLinks bounds how many linked curriculum documents are fetched
	// per program.
	MaxDocLinks int

	// FetchDelay is the fixed pause between consecutive document fetches.
	FetchDelay time.Duration

	// FetchTimeout bounds every individual network request.
	FetchTimeout time.Duration

	// Extractor selects the page text extractor ("visible" or "article").
	Extractor string

	// Store selects the snapshot backend ("snapshot" or "sqlite").
	Store string

	// SnapshotPath is the JSON snapshot location for the snapshot backend.
	SnapshotPath string

	// DBPath is the database location for the sqlite backend.
	DBPath string

	// Sources maps program keys to their source page URLs.
	Sources map[string]string
}

// Validate returns EINVALID if any parameter is out of range.
func (c *Config) Validate() error {
	switch {
	case c.MaxChunkLen <= 0:
		return Errorf(EINVALID, "max_chunk_len must be positive")
	case c.RelevanceThreshold <= 0 || c.RelevanceThreshold > 1:
		return Errorf(EINVALID, "relevance_threshold must be in (0, 1]")
	case c.TopK <= 0:
		return Errorf(EINVALID, "top_k must be positive")
	case c.MinDocFreq <= 0:
		return Errorf(EINVALID, "min_doc_freq must be positive")
	case c.MaxDocLinks < 0:
		return Errorf(EINVALID, "max_doc_links must not be negative")
	case c.FetchDelay < 0:
		return Errorf(EINVALID, "fetch_delay must not be negative")
	case c.FetchTimeout <= 0:
		return Errorf(EINVALID, "fetch_timeout must be positive")
	}
	if c.Extractor != ExtractorVisible && c.Extractor != ExtractorArticle {
		return Errorf(EINVALID, "unknown extractor %q", c.Extractor)
	}
	if c.Store != StoreSnapshot && c.Store != StoreSQLite {
		return Errorf(EINVALID, "unknown store %q", c.Store)
	}
	if len(c.Sources) == 0 {
		return Errorf(EINVALID, "at least one source is required")
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		MaxChunkLen:        550,
		RelevanceThreshold: 0.1,
		TopK:               3,
		MinDocFreq:         2,
		MaxDocLinks:        5,
		FetchDelay:         500 * time.Millisecond,
		FetchTimeout:       30 * time.Second,
		Extractor:          ExtractorVisible,
		Store:              StoreSnapshot,
		SnapshotPath:       "data/programs.json",
		DBPath:             "data/progadvisor.db",
		Sources: map[string]string{
			"ai":         "https://abit.itmo.ru/program/master/ai",
			"ai_product": "https://abit.itmo.ru/program/master/ai_product",
		},
	}
}
