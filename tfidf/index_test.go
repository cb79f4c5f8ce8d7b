package tfidf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/progadvisor"
	"github.com/akulov/progadvisor/tfidf"
)

func testPrograms() map[string]*progadvisor.Program {
	return map[string]*progadvisor.Program{
		"ai": {
			Key:  "ai",
			Name: "Искусственный интеллект",
			URL:  "https://example.com/ai",
			TextChunks: []string{
				"Обучение длится два года",
				"Обучение проходит в очном формате",
				"Студенты изучают машинное обучение и Python",
			},
		},
		"ai_product": {
			Key:  "ai_product",
			Name: "AI Product",
			URL:  "https://example.com/ai_product",
			TextChunks: []string{
				"Программа посвящена управлению продуктом",
				"Студенты изучают продуктовую аналитику",
			},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("builds over all program chunks", func(t *testing.T) {
		t.Parallel()

		idx, err := tfidf.Build(testPrograms(), tfidf.Options{})

		require.NoError(t, err)
		assert.Equal(t, 5, idx.Len())
	})

	t.Run("empty corpus fails with EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := tfidf.Build(map[string]*progadvisor.Program{}, tfidf.Options{})

		require.Error(t, err)
		assert.Equal(t, progadvisor.EINVALID, progadvisor.ErrorCode(err))
	})

	t.Run("corpus with no repeated terms fails with EINVALID", func(t *testing.T) {
		t.Parallel()

		programs := map[string]*progadvisor.Program{
			"ai": {
				Key:        "ai",
				URL:        "https://example.com/ai",
				TextChunks: []string{"уникальные слова здесь"},
			},
		}

		_, err := tfidf.Build(programs, tfidf.Options{MinDocFreq: 2})

		require.Error(t, err)
		assert.Equal(t, progadvisor.EINVALID, progadvisor.ErrorCode(err))
	})
}

func TestIndex_Ask(t *testing.T) {
	t.Parallel()

	idx, err := tfidf.Build(testPrograms(), tfidf.Options{})
	require.NoError(t, err)

	t.Run("answers an on-topic question with top chunks", func(t *testing.T) {
		t.Parallel()

		answer := idx.Ask("Сколько длится обучение?", nil)

		assert.Equal(t, progadvisor.AnswerMatched, answer.Outcome)
		assert.Greater(t, answer.Score, 0.1)
		assert.Contains(t, answer.Text, "Обучение длится два года")
		// Top-3 chunks joined with blank lines, best first.
		assert.Equal(t, "Обучение длится два года", strings.Split(answer.Text, "\n\n")[0])
	})

	t.Run("score never exceeds one", func(t *testing.T) {
		t.Parallel()

		answer := idx.Ask("Обучение длится два года", nil)

		assert.Equal(t, progadvisor.AnswerMatched, answer.Outcome)
		assert.LessOrEqual(t, answer.Score, 1.0)
	})

	t.Run("off-topic question returns the fixed guidance", func(t *testing.T) {
		t.Parallel()

		answer := idx.Ask("Как приготовить борщ?", nil)

		assert.Equal(t, progadvisor.AnswerOffTopic, answer.Outcome)
		assert.Equal(t, tfidf.OffTopicMessage, answer.Text)
		assert.Less(t, answer.Score, 0.1)
	})

	t.Run("restriction hides other programs", func(t *testing.T) {
		t.Parallel()

		answer := idx.Ask("Сколько длится обучение?", []string{"ai_product"})

		// The duration chunks belong to the other program, so the
		// restricted question falls below the threshold.
		assert.Equal(t, progadvisor.AnswerOffTopic, answer.Outcome)
		assert.NotContains(t, answer.Text, "Обучение длится два года")
	})

	t.Run("restriction matching nothing yields no data", func(t *testing.T) {
		t.Parallel()

		answer := idx.Ask("Сколько длится обучение?", []string{"unknown"})

		assert.Equal(t, progadvisor.AnswerNoData, answer.Outcome)
		assert.Equal(t, tfidf.NoDataMessage, answer.Text)
		assert.Zero(t, answer.Score)
	})
}

func TestIndex_Ask_LowFrequencyCorpus(t *testing.T) {
	t.Parallel()

	// A tiny corpus needs MinDocFreq 1 for question terms to survive into
	// the vocabulary at all.
	programs := map[string]*progadvisor.Program{
		"ai": {
			Key: "ai",
			URL: "https://example.com/ai",
			TextChunks: []string{
				"Срок обучения составляет два года",
				"Занятия проходят на русском языке",
			},
		},
	}
	idx, err := tfidf.Build(programs, tfidf.Options{MinDocFreq: 1})
	require.NoError(t, err)

	answer := idx.Ask("Какой срок обучения?", nil)

	assert.Equal(t, progadvisor.AnswerMatched, answer.Outcome)
	assert.Greater(t, answer.Score, 0.1)
	assert.Equal(t, "Срок обучения составляет два года", strings.Split(answer.Text, "\n\n")[0])
}
