// Package pdfcpu implements best-effort PDF text extraction on top of the
// pdfcpu content-stream API. Curriculum PDFs are mostly machine-generated
// tables of course titles, so the extractor favors preserving line
// structure over layout fidelity.
package pdfcpu

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/akulov/progadvisor"
)

// Ensure Extractor implements the domain interface at compile time.
var _ progadvisor.PDFExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF bytes.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text content of a PDF document, one line per
// positioned text run, pages separated by blank lines. Extraction never
// fails: malformed input yields an empty string.
func (e *Extractor) ExtractText(data []byte) (text string) {
	// pdfcpu is not hardened against hostile input; treat a panic the
	// same as a parse failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if len(data) == 0 {
		return ""
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return ""
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if pageText := extractPageText(ctx, pageNr); pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n\n")
}

// extractPageText pulls the content stream of one page and parses its text
// operators.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return parseContentStream(data)
}

// pdfString scans a PDF string literal "(...)" honoring escaped parens.
// Returns the decoded text and the index just past the closing paren, or
// -1 when no literal starts at data[start].
func pdfString(data []byte, start int) (string, int) {
	if start >= len(data) || data[start] != '(' {
		return "", -1
	}
	var sb strings.Builder
	depth := 1
	i := start + 1
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data):
			i++
			sb.WriteString(decodeEscape(data, &i))
			continue
		case c == '(':
			depth++
			sb.WriteByte(c)
		case c == ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
		i++
	}
	return sb.String(), i
}

// decodeEscape decodes one escape sequence at data[*i] (the byte after the
// backslash) and advances *i past it.
func decodeEscape(data []byte, i *int) string {
	c := data[*i]
	switch c {
	case 'n':
		*i++
		return "\n"
	case 'r':
		*i++
		return "\r"
	case 't':
		*i++
		return "\t"
	case '\\', '(', ')':
		*i++
		return string(c)
	}
	if c >= '0' && c <= '7' {
		val := 0
		for n := 0; n < 3 && *i < len(data) && data[*i] >= '0' && data[*i] <= '7'; n++ {
			val = val*8 + int(data[*i]-'0')
			*i++
		}
		return string(rune(val))
	}
	*i++
	return string(c)
}

// parseContentStream walks PDF content-stream operators and reassembles
// the shown text. Text-positioning operators (Td, TD, T*, ') start a new
// line: curriculum tables place each course title in its own positioned
// run, and the downstream course heuristic is line-based.
func parseContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")):
			writeStrings(&sb, line, false)
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			writeStrings(&sb, line, true)
		case bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) ||
			bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return cleanText(sb.String())
}

// writeStrings appends every string literal found on an operator line.
func writeStrings(sb *strings.Builder, line []byte, newline bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '(' {
			continue
		}
		text, next := pdfString(line, i)
		if next < 0 {
			break
		}
		if text != "" {
			if newline {
				sb.WriteByte('\n')
			}
			sb.WriteString(text)
		}
		i = next - 1
	}
}

// cleanText collapses horizontal whitespace within lines, drops
// unprintable characters, and removes empty lines. Line boundaries are
// kept: the course extractor depends on them.
func cleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		var sb strings.Builder
		prevSpace := false
		for _, r := range line {
			switch {
			case unicode.IsSpace(r):
				if !prevSpace && sb.Len() > 0 {
					sb.WriteByte(' ')
					prevSpace = true
				}
			case unicode.IsPrint(r):
				sb.WriteRune(r)
				prevSpace = false
			}
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}
