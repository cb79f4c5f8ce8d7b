package progadvisor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

var paragraphSep = regexp.MustCompile(`\n+`)

// SplitChunks splits text into retrieval chunks of at most maxLen
// characters. Paragraphs are accumulated greedily and joined with single
// spaces; a paragraph is never split, so a single paragraph longer than
// maxLen becomes its own oversized chunk. The result is deduplicated
// case-insensitively, keeping the first occurrence.
func SplitChunks(text string, maxLen int) []string {
	var chunks []string
	var buf []string
	cur := 0

	for _, para := range paragraphSep.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		// Lengths are counted in characters, not bytes: the corpus is
		// mostly Cyrillic.
		n := utf8.RuneCountInString(para)
		if cur+n+1 > maxLen && len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, " "))
			buf = []string{para}
			cur = n
		} else {
			buf = append(buf, para)
			cur += n + 1
		}
	}
	if len(buf) > 0 {
		chunks = append(chunks, strings.Join(buf, " "))
	}

	return dedupeFold(chunks, 0)
}

// dedupeFold removes case-insensitive duplicates preserving first-seen
// order. Seen values are tracked as xxhash digests of the lower-cased
// string rather than the strings themselves. A max of 0 means unbounded.
func dedupeFold(items []string, max int) []string {
	seen := make(map[uint64]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		h := xxhash.Sum64String(strings.ToLower(it))
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, it)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
