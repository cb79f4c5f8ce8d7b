// Package yaml loads progadvisor configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akulov/progadvisor"
)

// duration parses "500ms"/"30s" style values, which yaml.v3 does not do
// for time.Duration on its own.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = duration(parsed)
	return nil
}

// fileConfig is the on-disk schema. Pointer fields distinguish "absent"
// from zero so unset keys keep their defaults.
type fileConfig struct {
	MaxChunkLen        *int              `yaml:"max_chunk_len"`
	RelevanceThreshold *float64          `yaml:"relevance_threshold"`
	TopK               *int              `yaml:"top_k"`
	MinDocFreq         *int              `yaml:"min_doc_freq"`
	MaxDocLinks        *int              `yaml:"max_doc_links"`
	FetchDelay         *duration         `yaml:"fetch_delay"`
	FetchTimeout       *duration         `yaml:"fetch_timeout"`
	Extractor          *string           `yaml:"extractor"`
	Store              *string           `yaml:"store"`
	SnapshotPath       *string           `yaml:"snapshot_path"`
	DBPath             *string           `yaml:"db_path"`
	Sources            map[string]string `yaml:"sources"`
}

// LoadConfig reads configuration from path. A missing file is not an
// error: the built-in defaults are returned instead. Keys absent from the
// file keep their default values.
func LoadConfig(path string) (*progadvisor.Config, error) {
	config := progadvisor.DefaultConfig()

	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "parse config %s: %v", path, err)
	}
	apply(config, &fc)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func apply(config *progadvisor.Config, fc *fileConfig) {
	if fc.MaxChunkLen != nil {
		config.MaxChunkLen = *fc.MaxChunkLen
	}
	if fc.RelevanceThreshold != nil {
		config.RelevanceThreshold = *fc.RelevanceThreshold
	}
	if fc.TopK != nil {
		config.TopK = *fc.TopK
	}
	if fc.MinDocFreq != nil {
		config.MinDocFreq = *fc.MinDocFreq
	}
	if fc.MaxDocLinks != nil {
		config.MaxDocLinks = *fc.MaxDocLinks
	}
	if fc.FetchDelay != nil {
		config.FetchDelay = time.Duration(*fc.FetchDelay)
	}
	if fc.FetchTimeout != nil {
		config.FetchTimeout = time.Duration(*fc.FetchTimeout)
	}
	if fc.Extractor != nil {
		config.Extractor = *fc.Extractor
	}
	if fc.Store != nil {
		config.Store = *fc.Store
	}
	if fc.SnapshotPath != nil {
		config.SnapshotPath = *fc.SnapshotPath
	}
	if fc.DBPath != nil {
		config.DBPath = *fc.DBPath
	}
	if fc.Sources != nil {
		config.Sources = fc.Sources
	}
}
