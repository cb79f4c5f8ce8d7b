package main

import (
	"fmt"
	"sort"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	programs, err := deps.Ingestor.IngestAll(deps.Ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(programs))
	for k := range programs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p := programs[key]
		fmt.Fprintf(deps.Stdout, "%s: %q, %d chunks, %d courses\n", key, p.Name, len(p.TextChunks), len(p.Courses))
	}
	fmt.Fprintf(deps.Stdout, "Saved %d programs.\n", len(programs))
	return nil
}
