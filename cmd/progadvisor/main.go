package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/akulov/progadvisor"
	"github.com/akulov/progadvisor/fs"
	"github.com/akulov/progadvisor/goquery"
	advhttp "github.com/akulov/progadvisor/http"
	"github.com/akulov/progadvisor/ingest"
	"github.com/akulov/progadvisor/pdfcpu"
	"github.com/akulov/progadvisor/rod"
	advslog "github.com/akulov/progadvisor/slog"
	"github.com/akulov/progadvisor/sqlite"
	"github.com/akulov/progadvisor/tfidf"
	"github.com/akulov/progadvisor/trafilatura"
	"github.com/akulov/progadvisor/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, progadvisor.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database, opened only for the sqlite store backend.
	DB *sqlite.DB

	fetchers []progadvisor.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	for _, f := range m.fetchers {
		_ = f.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("progadvisor"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return progadvisor.Errorf(progadvisor.EINVALID, "no command specified. Run 'progadvisor --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return progadvisor.Errorf(progadvisor.EINVALID, "%s. Run 'progadvisor --help' for usage", err)
	}

	config, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}
	deps.Config = config

	logLevel := slog.LevelWarn
	if os.Getenv("PROGADVISOR_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	store, err := m.openStore(config)
	if err != nil {
		return err
	}
	deps.Store = advslog.NewLoggingProgramStore(store, deps.Logger)
	defer m.Close()

	ingestor, err := m.buildIngestor(cli, cmd, config, deps)
	if err != nil {
		return err
	}
	deps.Ingestor = ingestor

	deps.BuildAnswerer = func(programs map[string]*progadvisor.Program) (progadvisor.Answerer, error) {
		return tfidf.Build(programs, tfidf.Options{
			RelevanceThreshold: config.RelevanceThreshold,
			TopK:               config.TopK,
			MinDocFreq:         config.MinDocFreq,
		})
	}

	return kongCtx.Run(deps)
}

// openStore selects the snapshot backend from configuration.
func (m *Main) openStore(config *progadvisor.Config) (progadvisor.ProgramStore, error) {
	if config.Store == progadvisor.StoreSQLite {
		m.DB = sqlite.NewDB(config.DBPath)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", config.DBPath, err)
		}
		return sqlite.NewProgramStore(m.DB), nil
	}
	return fs.NewSnapshotStore(config.SnapshotPath), nil
}

// buildIngestor wires the ingestion pipeline. The page fetcher is swapped
// for a rendering browser when "ingest --render" was requested.
func (m *Main) buildIngestor(cli *CLI, cmd string, config *progadvisor.Config, deps *Dependencies) (*ingest.Ingestor, error) {
	docs := advhttp.NewFetcher(advhttp.WithTimeout(config.FetchTimeout))
	m.fetchers = append(m.fetchers, docs)

	var pages progadvisor.Fetcher = docs
	if cmd == "ingest" && cli.Ingest.Render {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		m.fetchers = append(m.fetchers, browser)
		pages = browser
	}

	var text progadvisor.TextExtractor = goquery.NewExtractor()
	if config.Extractor == progadvisor.ExtractorArticle {
		text = trafilatura.NewExtractor()
	}

	var limiter *rate.Limiter
	if config.FetchDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(config.FetchDelay), 1)
	}

	return &ingest.Ingestor{
		Pages:       advslog.NewLoggingFetcher(pages, deps.Logger),
		Docs:        advslog.NewLoggingFetcher(docs, deps.Logger),
		Text:        text,
		Links:       goquery.NewLinkFinder(),
		PDF:         pdfcpu.NewExtractor(),
		Store:       deps.Store,
		Sources:     config.Sources,
		Limiter:     limiter,
		Logger:      deps.Logger,
		MaxChunkLen: config.MaxChunkLen,
		MaxDocLinks: config.MaxDocLinks,
	}, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("PROGADVISOR_CONFIG"); path != "" {
		return path
	}
	return "progadvisor.yaml"
}
