// Package ingest orchestrates program ingestion: fetching program pages,
// discovering and downloading linked curriculum PDFs, chunking the text,
// extracting course titles, and persisting the snapshot.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/akulov/progadvisor"
)

// Ensure Ingestor implements progadvisor.Ingestor at compile time.
var _ progadvisor.Ingestor = (*Ingestor)(nil)

// Ingestor builds program records from their source pages.
// Fetching is strictly sequential: requests are paced through Limiter to
// avoid hammering the source, and concurrent ingestion runs are not
// supported.
type Ingestor struct {
	// Pages fetches program pages; Docs fetches linked documents.
	// They may be the same fetcher, or Pages may be a rendering fetcher
	// while Docs stays plain HTTP.
	Pages progadvisor.Fetcher
	Docs  progadvisor.Fetcher

	Text  progadvisor.TextExtractor
	Links progadvisor.LinkFinder
	PDF   progadvisor.PDFExtractor
	Store progadvisor.ProgramStore

	// Sources maps program keys to source URLs.
	Sources map[string]string

	// Limiter paces all outgoing requests. Nil disables pacing.
	Limiter *rate.Limiter

	// Logger receives degraded-document warnings. Nil disables logging.
	Logger *slog.Logger

	// MaxChunkLen and MaxDocLinks default to the DefaultConfig values
	// when zero.
	MaxChunkLen int
	MaxDocLinks int

	// RetryDelays overrides the main-page fetch backoff, for tests.
	RetryDelays []time.Duration
}

// IngestAll fetches and processes every configured program in sorted key
// order, persists the snapshot, and returns it. A hard failure on a main
// program page aborts the whole run; failures on linked documents only
// exclude those documents.
func (ing *Ingestor) IngestAll(ctx context.Context) (map[string]*progadvisor.Program, error) {
	keys := make([]string, 0, len(ing.Sources))
	for k := range ing.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	docCache := make(map[string]string)

	programs := make(map[string]*progadvisor.Program, len(keys))
	for _, key := range keys {
		p, err := ing.buildProgram(ctx, key, ing.Sources[key], docCache)
		if err != nil {
			return nil, fmt.Errorf("ingest program %q: %w", key, err)
		}
		programs[key] = p
	}

	if err := ing.Store.SavePrograms(ctx, programs); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	return programs, nil
}

// LoadOrIngest returns the persisted snapshot when one exists and performs
// a full ingestion otherwise.
func (ing *Ingestor) LoadOrIngest(ctx context.Context) (map[string]*progadvisor.Program, error) {
	programs, err := ing.Store.LoadPrograms(ctx)
	if err == nil {
		return programs, nil
	}
	if progadvisor.ErrorCode(err) != progadvisor.ENOTFOUND {
		return nil, err
	}
	return ing.IngestAll(ctx)
}

// buildProgram ingests a single program. docCache maps document URLs to
// their extracted text for the whole run: both programs of one faculty can
// link the same shared curriculum PDF, which is fetched once and still
// contributes its text to every program that links it.
func (ing *Ingestor) buildProgram(ctx context.Context, key, url string, docCache map[string]string) (*progadvisor.Program, error) {
	if err := ing.wait(ctx); err != nil {
		return nil, err
	}

	body, err := fetchWithRetry(ctx, ing.Pages, url, ing.RetryDelays, ing.Logger)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	html := string(body)

	page, err := ing.Text.ExtractText(html)
	if err != nil {
		return nil, fmt.Errorf("extract page text: %w", err)
	}

	links, err := ing.Links.FindDocLinks(html, url)
	if err != nil {
		// The page already parsed once, so this is unexpected; drop the
		// documents and keep the page text.
		ing.log("link discovery failed", "program", key, "error", err)
		links = nil
	}
	maxLinks := ing.MaxDocLinks
	if maxLinks <= 0 {
		maxLinks = progadvisor.DefaultConfig().MaxDocLinks
	}
	if len(links) > maxLinks {
		links = links[:maxLinks]
	}

	var docTexts []string
	for _, link := range links {
		text, cached := docCache[link.URL]
		if !cached {
			if err := ing.wait(ctx); err != nil {
				return nil, err
			}
			data, err := ing.Docs.Fetch(ctx, link.URL)
			if err != nil {
				ing.log("document fetch failed", "program", key, "url", link.URL, "error", err)
				continue
			}
			text = ing.PDF.ExtractText(data)
			docCache[link.URL] = text
		}
		if text != "" {
			docTexts = append(docTexts, text)
		} else {
			ing.log("document yielded no text", "program", key, "url", link.URL)
		}
	}

	allText := page.Text
	if len(docTexts) > 0 {
		allText += "\n\n" + strings.Join(docTexts, "\n\n")
	}

	maxChunkLen := ing.MaxChunkLen
	if maxChunkLen <= 0 {
		maxChunkLen = progadvisor.DefaultConfig().MaxChunkLen
	}
	chunks := progadvisor.SplitChunks(allText, maxChunkLen)
	if len(chunks) == 0 {
		ing.log("program ingested without text chunks", "program", key, "url", url)
	}

	// Course titles live in the curriculum PDFs when any were readable;
	// the page text is the fallback source.
	courseSource := page.Text
	if len(docTexts) > 0 {
		courseSource = strings.Join(docTexts, "\n")
	}

	return &progadvisor.Program{
		Key:        key,
		Name:       page.Title,
		URL:        url,
		TextChunks: chunks,
		Courses:    progadvisor.ExtractCourses(courseSource),
	}, nil
}

// wait blocks until the pacing limiter allows the next request.
func (ing *Ingestor) wait(ctx context.Context) error {
	if ing.Limiter == nil {
		return nil
	}
	return ing.Limiter.Wait(ctx)
}

func (ing *Ingestor) log(msg string, args ...any) {
	if ing.Logger != nil {
		ing.Logger.Warn(msg, args...)
	}
}
