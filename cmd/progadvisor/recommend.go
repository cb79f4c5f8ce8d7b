package main

import (
	"fmt"

	"github.com/akulov/progadvisor"
)

// Run executes the recommend command.
func (c *RecommendCmd) Run(deps *Dependencies) error {
	programs, err := deps.Ingestor.LoadOrIngest(deps.Ctx)
	if err != nil {
		return err
	}

	program, ok := programs[c.Program]
	if !ok {
		return progadvisor.Errorf(progadvisor.ENOTFOUND, "program %q not found. Use 'progadvisor compare' to see available programs.", c.Program)
	}

	rec := progadvisor.Recommend(program, c.Skills, c.Top)
	if len(rec.Courses) == 0 {
		fmt.Fprintln(deps.Stdout, "Не удалось подобрать элективы. Попробуйте указать навыки: python, ml, ds, math, nlp, cv, pm, se")
		return nil
	}

	if rec.Fallback {
		fmt.Fprintln(deps.Stdout, "Навыки не дали совпадений, показываю первые дисциплины программы:")
	}
	for i, course := range rec.Courses {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, course)
	}

	if c.Verbose {
		fmt.Fprintln(deps.Stdout, "\nScored courses:")
		for _, sc := range rec.Scored {
			fmt.Fprintf(deps.Stdout, "%4d  %s\n", sc.Score, sc.Title)
		}
	}
	return nil
}
