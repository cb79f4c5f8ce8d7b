package main

import (
	"fmt"
	"sort"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	programs, err := deps.Ingestor.LoadOrIngest(deps.Ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(programs))
	for k := range programs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(deps.Stdout, "Сравнение программ:")
	for _, key := range keys {
		p := programs[key]
		fmt.Fprintf(deps.Stdout, "• %s (%s): %d фрагментов, ~%d дисциплин\n", p.Name, key, len(p.TextChunks), len(p.Courses))
	}
	return nil
}
