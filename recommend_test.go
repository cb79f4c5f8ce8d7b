package progadvisor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/progadvisor"
)

func TestRecommend(t *testing.T) {
	t.Parallel()

	program := &progadvisor.Program{
		Key:  "ai",
		Name: "Искусственный интеллект",
		URL:  "https://example.com/ai",
		Courses: []string{
			"История науки",
			"Машинное обучение",
			"Практикум по Python",
			"Продвинутое компьютерное зрение",
		},
	}

	t.Run("orders courses by skill match", func(t *testing.T) {
		t.Parallel()

		rec := progadvisor.Recommend(program, "python,cv", 7)

		// "Практикум по Python": python +2, практикум +1.
		// "Продвинутое компьютерное зрение": cv +2, продвинут +1.
		// Ties keep catalog order.
		require.False(t, rec.Fallback)
		assert.Equal(t, []string{
			"Практикум по Python",
			"Продвинутое компьютерное зрение",
		}, rec.Courses)
	})

	t.Run("respects topN", func(t *testing.T) {
		t.Parallel()

		rec := progadvisor.Recommend(program, "python,cv,ml", 1)

		require.Len(t, rec.Courses, 1)
	})

	t.Run("falls back to leading courses when nothing matches", func(t *testing.T) {
		t.Parallel()

		// No skill hit and no practice/advanced bonus words anywhere.
		p := &progadvisor.Program{
			Key: "ai",
			URL: "https://example.com/ai",
			Courses: []string{
				"История науки",
				"Философия сознания",
				"Экономика отрасли",
			},
		}

		rec := progadvisor.Recommend(p, "биология", 2)

		assert.True(t, rec.Fallback)
		assert.Equal(t, []string{"История науки", "Философия сознания"}, rec.Courses)
	})

	t.Run("unknown skill token matches as a literal substring", func(t *testing.T) {
		t.Parallel()

		rec := progadvisor.Recommend(program, "зрение", 7)

		// The literal match (+2, +1 advanced) outranks the course that only
		// collects the practice bonus.
		require.False(t, rec.Fallback)
		assert.Equal(t, []string{
			"Продвинутое компьютерное зрение",
			"Практикум по Python",
		}, rec.Courses)
	})

	t.Run("uses mid-length chunks when courses are missing", func(t *testing.T) {
		t.Parallel()

		p := &progadvisor.Program{
			Key: "ai",
			URL: "https://example.com/ai",
			TextChunks: []string{
				"коротко",
				"Курс по машинному обучению и Python",
			},
		}

		rec := progadvisor.Recommend(p, "python", 7)

		require.False(t, rec.Fallback)
		assert.Equal(t, []string{"Курс по машинному обучению и Python"}, rec.Courses)
	})

	t.Run("bounds the scored diagnostic list", func(t *testing.T) {
		t.Parallel()

		p := &progadvisor.Program{Key: "ai", URL: "https://example.com/ai"}
		for i := 0; i < 30; i++ {
			p.Courses = append(p.Courses, fmt.Sprintf("Дисциплина номер %d", i))
		}

		rec := progadvisor.Recommend(p, "python", 5)

		assert.Len(t, rec.Scored, 20)
	})

	t.Run("empty program yields no recommendations", func(t *testing.T) {
		t.Parallel()

		p := &progadvisor.Program{Key: "ai", URL: "https://example.com/ai"}

		rec := progadvisor.Recommend(p, "python", 7)

		assert.True(t, rec.Fallback)
		assert.Empty(t, rec.Courses)
	})
}

func TestParseSkills(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"python", "ml", "ds"}, progadvisor.ParseSkills(" Python , ML,ds ,"))
	assert.Nil(t, progadvisor.ParseSkills(""))
}
