package main

import (
	"fmt"
	"strings"

	"github.com/akulov/progadvisor"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		return progadvisor.Errorf(progadvisor.EINVALID, "question required")
	}

	programs, err := deps.Ingestor.LoadOrIngest(deps.Ctx)
	if err != nil {
		return err
	}

	for _, key := range c.Program {
		if _, ok := programs[key]; !ok {
			return progadvisor.Errorf(progadvisor.ENOTFOUND, "program %q not found. Use 'progadvisor compare' to see available programs.", key)
		}
	}

	answerer, err := deps.BuildAnswerer(programs)
	if err != nil {
		return err
	}

	answer := answerer.Ask(question, c.Program)
	fmt.Fprintf(deps.Stdout, "[score=%.3f]\n%s\n", answer.Score, answer.Text)
	return nil
}
