// Package goquery provides HTML-based implementations of the page text
// extractor and curriculum link finder using CSS selection.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/akulov/progadvisor"
)

// DefaultTitle is used when a page has neither a heading nor a title tag.
const DefaultTitle = "Программа магистратуры"

// minLineLen drops near-empty lines from extracted page text.
const minLineLen = 3

// Ensure Extractor implements the domain interface at compile time.
var _ progadvisor.TextExtractor = (*Extractor)(nil)

// Extractor extracts the title and full visible text from a program page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText parses HTML and returns the page title and its visible text
// with scripts and styles stripped, whitespace collapsed, and near-empty
// lines dropped.
func (e *Extractor) ExtractText(rawHTML string) (*progadvisor.PageText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	return &progadvisor.PageText{
		Title: extractTitle(doc),
		Text:  visibleText(doc),
	}, nil
}

// extractTitle returns the first non-empty h1, then the page title, then
// the default placeholder.
func extractTitle(doc *goquery.Document) string {
	title := ""
	doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			title = t
			return false
		}
		return true
	})
	if title != "" {
		return title
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return DefaultTitle
}

// blockTags are elements that end a line of visible text.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {}, "header": {},
	"footer": {}, "main": {}, "aside": {}, "nav": {}, "ul": {}, "ol": {},
	"li": {}, "table": {}, "tr": {}, "td": {}, "th": {}, "h1": {},
	"h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "br": {},
	"blockquote": {}, "pre": {}, "form": {},
}

// visibleText collects text nodes in document order, breaking lines at
// block-element boundaries, then collapses whitespace within each line and
// drops lines too short to carry content.
func visibleText(doc *goquery.Document) string {
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, block := blockTags[n.Data]; block {
				sb.WriteByte('\n')
			}
		}
	}
	for _, n := range root.Nodes {
		walk(n)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if utf8.RuneCountInString(line) < minLineLen {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
