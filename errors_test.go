package progadvisor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akulov/progadvisor"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", progadvisor.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := progadvisor.Errorf(progadvisor.ENOTFOUND, "program %q not found", "ai")
		assert.Equal(t, progadvisor.ENOTFOUND, progadvisor.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("ingest: %w", progadvisor.Errorf(progadvisor.EUNAVAILABLE, "HTTP 503"))
		assert.Equal(t, progadvisor.EUNAVAILABLE, progadvisor.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, progadvisor.EINTERNAL, progadvisor.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", progadvisor.ErrorMessage(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := progadvisor.Errorf(progadvisor.EINVALID, "question required")
		assert.Equal(t, "question required", progadvisor.ErrorMessage(err))
	})

	t.Run("non-application error is masked", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An internal error has occurred.", progadvisor.ErrorMessage(errors.New("boom")))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := progadvisor.Errorf(progadvisor.EINVALID, "bad input")
	assert.Equal(t, "progadvisor error: code=invalid message=bad input", err.Error())
}
