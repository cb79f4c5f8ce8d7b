// Package mock provides function-field mock implementations of the
// progadvisor service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/akulov/progadvisor"
)

var _ progadvisor.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of progadvisor.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ progadvisor.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of progadvisor.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (*progadvisor.PageText, error)
}

func (e *TextExtractor) ExtractText(html string) (*progadvisor.PageText, error) {
	return e.ExtractTextFn(html)
}

var _ progadvisor.LinkFinder = (*LinkFinder)(nil)

// LinkFinder is a mock implementation of progadvisor.LinkFinder.
type LinkFinder struct {
	FindDocLinksFn func(html, baseURL string) ([]progadvisor.DocLink, error)
}

func (f *LinkFinder) FindDocLinks(html, baseURL string) ([]progadvisor.DocLink, error) {
	return f.FindDocLinksFn(html, baseURL)
}

var _ progadvisor.PDFExtractor = (*PDFExtractor)(nil)

// PDFExtractor is a mock implementation of progadvisor.PDFExtractor.
type PDFExtractor struct {
	ExtractTextFn func(data []byte) string
}

func (e *PDFExtractor) ExtractText(data []byte) string {
	return e.ExtractTextFn(data)
}

var _ progadvisor.ProgramStore = (*ProgramStore)(nil)

// ProgramStore is a mock implementation of progadvisor.ProgramStore.
type ProgramStore struct {
	LoadProgramsFn func(ctx context.Context) (map[string]*progadvisor.Program, error)
	SaveProgramsFn func(ctx context.Context, programs map[string]*progadvisor.Program) error
}

func (s *ProgramStore) LoadPrograms(ctx context.Context) (map[string]*progadvisor.Program, error) {
	return s.LoadProgramsFn(ctx)
}

func (s *ProgramStore) SavePrograms(ctx context.Context, programs map[string]*progadvisor.Program) error {
	return s.SaveProgramsFn(ctx, programs)
}

var _ progadvisor.Ingestor = (*Ingestor)(nil)

// Ingestor is a mock implementation of progadvisor.Ingestor.
type Ingestor struct {
	IngestAllFn    func(ctx context.Context) (map[string]*progadvisor.Program, error)
	LoadOrIngestFn func(ctx context.Context) (map[string]*progadvisor.Program, error)
}

func (i *Ingestor) IngestAll(ctx context.Context) (map[string]*progadvisor.Program, error) {
	return i.IngestAllFn(ctx)
}

func (i *Ingestor) LoadOrIngest(ctx context.Context) (map[string]*progadvisor.Program, error) {
	return i.LoadOrIngestFn(ctx)
}

var _ progadvisor.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of progadvisor.Answerer.
type Answerer struct {
	AskFn func(question string, onlyPrograms []string) progadvisor.Answer
}

func (a *Answerer) Ask(question string, onlyPrograms []string) progadvisor.Answer {
	return a.AskFn(question, onlyPrograms)
}
