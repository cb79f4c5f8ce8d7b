package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/progadvisor"
	main "github.com/akulov/progadvisor/cmd/progadvisor"
	"github.com/akulov/progadvisor/mock"
)

func TestRecommendCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a numbered list", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})

		err := (&main.RecommendCmd{Program: "ai", Skills: "python", Top: 7}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1. Практикум по Python")
	})

	t.Run("unknown program is not found", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(&bytes.Buffer{}, &bytes.Buffer{})

		err := (&main.RecommendCmd{Program: "design", Skills: "python", Top: 7}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, progadvisor.ENOTFOUND, progadvisor.ErrorCode(err))
		assert.Contains(t, progadvisor.ErrorMessage(err), "design")
	})

	t.Run("verbose adds the scored table", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})

		err := (&main.RecommendCmd{Program: "ai", Skills: "python", Top: 7, Verbose: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Scored courses:")
		assert.Contains(t, stdout.String(), "Машинное обучение")
	})

	t.Run("no skill match falls back to leading courses", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})

		err := (&main.RecommendCmd{Program: "ai_product", Skills: "биология", Top: 7}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Навыки не дали совпадений")
		assert.Contains(t, stdout.String(), "1. Продуктовая аналитика")
	})

	t.Run("program without any candidates prints the skills hint", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})
		deps.Ingestor = &mock.Ingestor{
			LoadOrIngestFn: func(context.Context) (map[string]*progadvisor.Program, error) {
				return map[string]*progadvisor.Program{
					"empty": {Key: "empty", URL: "https://example.com/empty"},
				}, nil
			},
		}

		err := (&main.RecommendCmd{Program: "empty", Skills: "python", Top: 7}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Не удалось подобрать элективы")
	})
}
