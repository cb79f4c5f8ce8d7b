package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/akulov/progadvisor"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config   *progadvisor.Config
	Store    progadvisor.ProgramStore
	Ingestor progadvisor.Ingestor

	// BuildAnswerer turns an ingested snapshot into a question answerer.
	// Injected so command tests can substitute a mock.
	BuildAnswerer func(programs map[string]*progadvisor.Program) (progadvisor.Answerer, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest    IngestCmd    `cmd:"" help:"Fetch program pages and rebuild the snapshot"`
	Ask       AskCmd       `cmd:"" help:"Ask a question about the programs"`
	Recommend RecommendCmd `cmd:"" help:"Recommend elective courses for a program"`
	Compare   CompareCmd   `cmd:"" help:"Show per-program chunk and course counts"`
	Chat      ChatCmd      `cmd:"" help:"Start the interactive chat"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Render bool `help:"Render pages in a headless browser before extraction"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question text"`
	Program  []string `short:"p" help:"Restrict the answer to these program keys (repeatable)"`
}

// RecommendCmd is the "recommend" subcommand.
type RecommendCmd struct {
	Program string `short:"p" required:"" help:"Program key"`
	Skills  string `short:"s" default:"" help:"Comma-separated skills (e.g. python,ml,ds)"`
	Top     int    `default:"7" help:"Number of courses to recommend"`
	Verbose bool   `short:"v" help:"Also print the scored course table"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct{}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}
