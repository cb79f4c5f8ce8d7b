// Package trafilatura provides a main-content implementation of the page
// text extractor. Unlike the goquery extractor it drops page boilerplate
// (navigation, footers, cookie banners), which keeps advertisement text
// out of the retrieval chunks at the cost of occasionally dropping
// sidebar content.
package trafilatura

import (
	"strings"
	"unicode/utf8"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/akulov/progadvisor"
)

// minLineLen drops near-empty lines, matching the goquery extractor.
const minLineLen = 3

// Ensure Extractor implements the domain interface at compile time.
var _ progadvisor.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the page title and the text
// of its main content block.
func (e *Extractor) ExtractText(rawHTML string) (*progadvisor.PageText, error) {
	if rawHTML == "" {
		return nil, progadvisor.Errorf(progadvisor.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = "Программа магистратуры"
	}

	var text string
	if result.ContentNode != nil {
		text = nodeText(result.ContentNode)
	}

	return &progadvisor.PageText{Title: title, Text: text}, nil
}

// blockTags are elements that end a line of extracted text.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {}, "ul": {}, "ol": {},
	"li": {}, "table": {}, "tr": {}, "td": {}, "th": {}, "h1": {},
	"h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "br": {},
	"blockquote": {}, "pre": {},
}

// nodeText flattens a content node into line-per-block plain text.
func nodeText(root *html.Node) string {
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
	walk(root)

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
