package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akulov/progadvisor"
)

// curriculumTerms mark anchor texts that point at study-plan documents.
var curriculumTerms = []string{"учеб", "план", "curriculum"}

// Ensure LinkFinder implements the domain interface at compile time.
var _ progadvisor.LinkFinder = (*LinkFinder)(nil)

// LinkFinder discovers curriculum document links on a program page.
type LinkFinder struct{}

// NewLinkFinder creates a new LinkFinder.
func NewLinkFinder() *LinkFinder {
	return &LinkFinder{}
}

// FindDocLinks scans every anchor on the page and keeps those whose text
// contains a curriculum vocabulary term or whose URL ends in ".pdf".
// Relative URLs are resolved against baseURL; only PDF-suffixed results
// survive, deduplicated in document order. Study plans are published as
// PDFs on the source sites, so everything else is noise.
func (f *LinkFinder) FindDocLinks(rawHTML string, baseURL string) ([]progadvisor.DocLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []progadvisor.DocLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if !matchesCurriculum(text) && !isPDF(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		full := resolved.String()

		if !isPDF(full) {
			return
		}
		if _, dup := seen[full]; dup {
			return
		}
		seen[full] = struct{}{}
		links = append(links, progadvisor.DocLink{URL: full, Text: strings.TrimSpace(sel.Text())})
	})

	return links, nil
}

func matchesCurriculum(anchorText string) bool {
	for _, term := range curriculumTerms {
		if strings.Contains(anchorText, term) {
			return true
		}
	}
	return false
}

func isPDF(u string) bool {
	return strings.HasSuffix(strings.ToLower(u), ".pdf")
}
