package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akulov/progadvisor/tui"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	programs, err := deps.Ingestor.LoadOrIngest(deps.Ctx)
	if err != nil {
		return err
	}

	answerer, err := deps.BuildAnswerer(programs)
	if err != nil {
		return err
	}

	router := &tui.Router{Programs: programs, Answerer: answerer}
	program := tea.NewProgram(tui.New(router), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat terminated: %w", err)
	}
	return nil
}
