package progadvisor

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Recommendation defaults.
const (
	// DefaultTopN is the number of courses recommended when the caller
	// does not ask for a specific count.
	DefaultTopN = 7

	// scoredDisplayLimit bounds the diagnostic scored list.
	scoredDisplayLimit = 20

	// Pseudo-course chunk length bounds (exclusive) and cap, used when a
	// program has no extracted courses.
	pseudoMinLen = 15
	pseudoMaxLen = 100
	pseudoCap    = 20
)

// SkillKeywords maps a short skill token to the substring synonyms used
// for course scoring. Unknown skills fall back to the token itself.
var SkillKeywords = map[string][]string{
	"python": {"python", "питон"},
	"ml":     {"machine learning", "ml", "машинн", "обучен"},
	"ds":     {"data", "данн", "аналитик", "statistics", "статист"},
	"math":   {"матем", "матстат", "вероят", "алгебр", "анал"},
	"cv":     {"computer vision", "cv", "компьютерн", "зрение"},
	"nlp":    {"nlp", "обработк", "текст", "язык"},
	"pm":     {"product", "продакт", "менедж", "бизнес", "маркет"},
	"se":     {"backend", "software", "разработ", "инженер", "системн", "архитект"},
}

var (
	practiceRe = regexp.MustCompile(`(?i)(практик|workshop|project|проект|практикум)`)
	advancedRe = regexp.MustCompile(`(?i)(углубл|advanced|продвинут)`)
)

// ScoredCourse pairs a course title with its recommendation score.
type ScoredCourse struct {
	Title string
	Score int
}

// Recommendation is the result of scoring a program's courses against a
// skill list.
type Recommendation struct {
	// Courses is the chosen top-N list. Non-empty whenever the program has
	// at least one course or pseudo-course.
	Courses []string

	// Scored is the diagnostic top-20 of the full sorted scoring,
	// regardless of which courses were chosen.
	Scored []ScoredCourse

	// Fallback is true when no course scored positive and Courses holds
	// the first N titles in original order instead.
	Fallback bool
}

// Recommend scores the program's courses against a comma-separated skill
// list and returns the topN picks. Programs without extracted courses fall
// back to mid-length text chunks as pseudo-course names.
func Recommend(p *Program, skillsCSV string, topN int) Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}
	skills := ParseSkills(skillsCSV)

	courses := p.Courses
	if len(courses) == 0 {
		courses = pseudoCourses(p.TextChunks)
	}

	scored := make([]ScoredCourse, 0, len(courses))
	for _, c := range courses {
		scored = append(scored, ScoredCourse{Title: c, Score: scoreCourse(c, skills)})
	}
	// Stable: ties keep original catalog order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	var top []string
	for _, sc := range scored {
		if len(top) >= topN {
			break
		}
		if sc.Score > 0 {
			top = append(top, sc.Title)
		}
	}

	fallback := false
	if len(top) == 0 {
		// Nothing matched the skills: recommend the leading courses so the
		// user still gets something to react to.
		fallback = true
		for i := 0; i < len(courses) && i < topN; i++ {
			top = append(top, courses[i])
		}
	}

	display := scored
	if len(display) > scoredDisplayLimit {
		display = display[:scoredDisplayLimit]
	}

	return Recommendation{Courses: top, Scored: display, Fallback: fallback}
}

// ParseSkills splits a comma-separated skill list into normalized tokens.
func ParseSkills(csv string) []string {
	var skills []string
	for _, s := range strings.Split(csv, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// scoreCourse scores one course title: +2 per matched skill, +1 for
// practice-oriented titles, +1 for advanced ones.
func scoreCourse(course string, skills []string) int {
	s := strings.ToLower(course)
	score := 0
	for _, sk := range skills {
		kws, ok := SkillKeywords[sk]
		if !ok {
			kws = []string{sk}
		}
		for _, kw := range kws {
			if strings.Contains(s, kw) {
				score += 2
				break
			}
		}
	}
	if practiceRe.MatchString(s) {
		score++
	}
	if advancedRe.MatchString(s) {
		score++
	}
	return score
}

// pseudoCourses picks informative mid-length chunks to stand in for a
// missing course list.
func pseudoCourses(chunks []string) []string {
	var out []string
	for _, t := range chunks {
		n := utf8.RuneCountInString(t)
		if n > pseudoMinLen && n < pseudoMaxLen {
			out = append(out, t)
			if len(out) >= pseudoCap {
				break
			}
		}
	}
	return out
}
