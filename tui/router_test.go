package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/progadvisor"
	"github.com/akulov/progadvisor/mock"
)

func testRouter(ask func(q string, only []string) progadvisor.Answer) *Router {
	if ask == nil {
		ask = func(q string, only []string) progadvisor.Answer {
			return progadvisor.Answer{Text: "ответ", Score: 0.42, Outcome: progadvisor.AnswerMatched}
		}
	}
	return &Router{
		Programs: map[string]*progadvisor.Program{
			"ai": {
				Key:        "ai",
				Name:       "Искусственный интеллект",
				URL:        "https://example.com/ai",
				TextChunks: []string{"фрагмент"},
				Courses:    []string{"Машинное обучение", "Практикум по Python"},
			},
			"ai_product": {
				Key:  "ai_product",
				Name: "AI Product",
				URL:  "https://example.com/ai_product",
			},
		},
		Answerer: &mock.Answerer{AskFn: ask},
	}
}

func TestRouter_Reply(t *testing.T) {
	t.Parallel()

	t.Run("start lists programs and help", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("/start")

		assert.Contains(t, got, "ai или ai_product")
		assert.Contains(t, got, "/ask")
		assert.Contains(t, got, "/recommend")
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("/help")

		assert.Contains(t, got, "/compare")
	})

	t.Run("ask forwards the question", func(t *testing.T) {
		t.Parallel()

		var asked string
		r := testRouter(func(q string, only []string) progadvisor.Answer {
			asked = q
			return progadvisor.Answer{Text: "два года", Score: 0.5, Outcome: progadvisor.AnswerMatched}
		})

		got := r.Reply("/ask Сколько длится обучение?")

		assert.Equal(t, "Сколько длится обучение?", asked)
		assert.Equal(t, "два года\n\n(relevance=0.50)", got)
	})

	t.Run("ask without a question prompts for one", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("/ask")

		assert.Equal(t, "Напишите: /ask ваш вопрос", got)
	})

	t.Run("recommend explains the expected format", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("/recommend")

		assert.Contains(t, got, "ai/ai_product")
		assert.Contains(t, got, "через запятую")
	})

	t.Run("compare shows counts per program", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("/compare")

		assert.Contains(t, got, "Сравнение программ:")
		assert.Contains(t, got, "Искусственный интеллект: 1 фрагментов, ~2 дисциплин")
		assert.Contains(t, got, "AI Product: 0 фрагментов, ~0 дисциплин")
	})

	t.Run("program with skills line recommends", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("ai, python")

		require.Contains(t, got, "Рекомендую (программа: ai):")
		assert.Contains(t, got, "1. Практикум по Python")
	})

	t.Run("program line without skills uses the defaults", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("ai")

		// "python,ml,ds" matches both catalog courses.
		require.Contains(t, got, "Рекомендую (программа: ai):")
		assert.Contains(t, got, "Машинное обучение")
		assert.Contains(t, got, "Практикум по Python")
	})

	t.Run("unknown program in a skills line", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("design, python")

		assert.Contains(t, got, "Не понял программу")
	})

	t.Run("unrelated chatter gets the guidance message", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("Привет! Как дела?")

		assert.Contains(t, got, "Используйте /ask, /recommend или /compare")
	})

	t.Run("bare unknown word is chatter, not a program", func(t *testing.T) {
		t.Parallel()

		got := testRouter(nil).Reply("hello")

		assert.Contains(t, got, "Используйте /ask, /recommend или /compare")
	})
}

func TestParseRecommendLine(t *testing.T) {
	t.Parallel()

	t.Run("splits key and skills", func(t *testing.T) {
		t.Parallel()

		key, skills, ok := parseRecommendLine("AI, Python, ML")

		require.True(t, ok)
		assert.Equal(t, "ai", key)
		assert.Equal(t, "python,ml", skills)
	})

	t.Run("key only", func(t *testing.T) {
		t.Parallel()

		key, skills, ok := parseRecommendLine("ai_product")

		require.True(t, ok)
		assert.Equal(t, "ai_product", key)
		assert.Empty(t, skills)
	})

	t.Run("rejects non-identifier first field", func(t *testing.T) {
		t.Parallel()

		_, _, ok := parseRecommendLine("Привет, мир")

		assert.False(t, ok)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, _, ok := parseRecommendLine("   ")

		assert.False(t, ok)
	})
}
