package tfidf

import (
	"regexp"
	"strings"
)

var (
	// allowRe strips everything outside lower-case Cyrillic and Latin
	// letters, digits, and a small punctuation set that survives into the
	// vector space tokenizer.
	allowRe = regexp.MustCompile(`[^а-яa-z0-9\-\s.,:;()/%+]`)

	multiSpaceRe = regexp.MustCompile(`\s{2,}`)

	// termRe matches word tokens of at least two letters or digits.
	termRe = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)
)

// Normalize lower-cases text, removes characters outside the allow-list,
// and collapses repeated whitespace. The same normalization is applied to
// corpus chunks at build time and to questions at query time.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = allowRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// terms tokenizes normalized text into the unigram+bigram stream the index
// is built over. Stop words are removed before bigram formation.
func terms(normalized string) []string {
	raw := termRe.FindAllString(normalized, -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}

	out := make([]string, 0, len(words)*2)
	out = append(out, words...)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}
