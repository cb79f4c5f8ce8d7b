// Package tui implements the interactive chat front end.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akulov/progadvisor"
)

// DefaultSkills is used when a recommendation request names no skills.
const DefaultSkills = "python,ml,ds"

const help = "Привет! Я помогу сравнить магистерские программы ITMO и ответить на вопросы по их содержимому.\n\n" +
	"Команды:\n" +
	"/start — начало\n" +
	"/ask <вопрос> — задать вопрос по программам\n" +
	"/recommend — рекомендации элективов\n" +
	"/compare — краткое сравнение\n"

const offTopicGuidance = "Я отвечаю только на вопросы об обучении в программах ITMO. Используйте /ask, /recommend или /compare."

// Router maps chat input lines to replies. It is independent of the
// terminal model so the conversation logic can be tested directly.
type Router struct {
	Programs map[string]*progadvisor.Program
	Answerer progadvisor.Answerer
}

// Reply produces the assistant's response to one input line.
func (r *Router) Reply(input string) string {
	input = strings.TrimSpace(input)
	switch {
	case input == "/start":
		return "Выберите программу: " + strings.Join(r.programKeys(), " или ") + ". Задайте вопрос через /ask или получите рекомендации /recommend.\n\n" + help
	case input == "/help":
		return help
	case input == "/compare":
		return r.compare()
	case input == "/recommend":
		keys := strings.Join(r.programKeys(), "/")
		return fmt.Sprintf("Укажи программу (%s) и список навыков через запятую.\nПример: ai, python, ml, math", keys)
	case strings.HasPrefix(input, "/ask"):
		q := strings.TrimSpace(strings.TrimPrefix(input, "/ask"))
		if q == "" {
			return "Напишите: /ask ваш вопрос"
		}
		ans := r.Answerer.Ask(q, nil)
		return fmt.Sprintf("%s\n\n(relevance=%.2f)", ans.Text, ans.Score)
	}
	if reply, ok := r.recommendLine(input); ok {
		return reply
	}
	return offTopicGuidance
}

// recommendLine handles free-text lines of the form
// "<program-key>, skill, skill...". The second return value reports
// whether the line was recognized as a recommendation request.
func (r *Router) recommendLine(input string) (string, bool) {
	key, skills, ok := parseRecommendLine(input)
	if !ok {
		return "", false
	}
	program, found := r.Programs[key]
	if !found {
		// Bare words that name no program are ordinary chat, not a
		// malformed recommendation request.
		if !strings.Contains(input, ",") {
			return "", false
		}
		return "Не понял программу. Используйте " + strings.Join(r.programKeys(), " или ") + ".", true
	}
	if skills == "" {
		skills = DefaultSkills
	}
	rec := progadvisor.Recommend(program, skills, progadvisor.DefaultTopN)
	if len(rec.Courses) == 0 {
		return "Не удалось подобрать элективы. Попробуйте указать навыки: python, ml, ds, math, nlp, cv, pm, se", true
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Рекомендую (программа: %s):\n", key)
	for i, c := range rec.Courses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return strings.TrimRight(b.String(), "\n"), true
}

// parseRecommendLine splits "<key>, skill, skill" into a program key and
// a skills CSV. A line qualifies when its first comma-separated field is
// a single lowercase identifier-looking token.
func parseRecommendLine(input string) (key, skills string, ok bool) {
	parts := strings.Split(strings.ToLower(input), ",")
	key = strings.TrimSpace(parts[0])
	if key == "" || !isKeyToken(key) {
		return "", "", false
	}
	rest := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			rest = append(rest, p)
		}
	}
	return key, strings.Join(rest, ","), true
}

func isKeyToken(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

func (r *Router) compare() string {
	var b strings.Builder
	b.WriteString("Сравнение программ:\n")
	for _, key := range r.programKeys() {
		p := r.Programs[key]
		fmt.Fprintf(&b, "• %s: %d фрагментов, ~%d дисциплин\n", p.Name, len(p.TextChunks), len(p.Courses))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Router) programKeys() []string {
	keys := make([]string, 0, len(r.Programs))
	for k := range r.Programs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
