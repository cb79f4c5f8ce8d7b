package progadvisor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCourses bounds the number of course titles extracted per program.
const MaxCourses = 80

// Course candidate bounds in characters.
const (
	minCourseLen = 6
	maxCourseLen = 90
)

var (
	// adminLineRe matches administrative metadata lines that are never
	// course titles (semester markers, credit counts, exam notes, table
	// and appendix captions).
	adminLineRe = regexp.MustCompile(`(?i)(семестр|кред|зачет|экзамен|hours|ects|таблица|приложение)`)

	innerSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// courseTrimSet holds the bullet and punctuation characters stripped from
// candidate ends.
const courseTrimSet = "·•—-–;:, "

// ExtractCourses pulls candidate course-title lines out of raw text.
// The heuristic keeps multi-word lines of plausible title length that are
// not all-caps and not administrative metadata. It is best-effort and
// never fails; precision and recall are a tradeoff for not requiring any
// document structure.
func ExtractCourses(text string) []string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		n := utf8.RuneCountInString(s)
		if n < minCourseLen || n > maxCourseLen {
			continue
		}
		if isAllUpper(s) {
			continue
		}
		if adminLineRe.MatchString(s) {
			continue
		}
		// Course titles are multi-word; single tokens are headers or noise.
		if !strings.Contains(s, " ") {
			continue
		}
		candidates = append(candidates, s)
	}

	cleaned := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = innerSpaceRe.ReplaceAllString(c, " ")
		c = strings.Trim(c, courseTrimSet)
		n := utf8.RuneCountInString(c)
		if n < minCourseLen || n > maxCourseLen {
			continue
		}
		cleaned = append(cleaned, c)
	}

	return dedupeFold(cleaned, MaxCourses)
}

// isAllUpper reports whether s contains at least one cased letter and no
// lower-case letters, mirroring how heading lines look in curriculum PDFs.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
