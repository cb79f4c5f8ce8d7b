package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/progadvisor"
	main "github.com/akulov/progadvisor/cmd/progadvisor"
	"github.com/akulov/progadvisor/mock"
)

func TestCompareCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists all programs in sorted key order", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := testDeps(stdout, &bytes.Buffer{})

		err := (&main.CompareCmd{}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Сравнение программ:")
		assert.Contains(t, out, "• Искусственный интеллект (ai): 1 фрагментов, ~2 дисциплин")
		assert.Contains(t, out, "• AI Product (ai_product): 1 фрагментов, ~0 дисциплин")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("(ai)")), bytes.Index(stdout.Bytes(), []byte("(ai_product)")))
	})

	t.Run("load failure propagates", func(t *testing.T) {
		t.Parallel()

		deps := testDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Ingestor = &mock.Ingestor{
			LoadOrIngestFn: func(context.Context) (map[string]*progadvisor.Program, error) {
				return nil, errors.New("boom")
			},
		}

		err := (&main.CompareCmd{}).Run(deps)

		require.Error(t, err)
	})
}
