package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	t.Run("passes values through", func(t *testing.T) {
		v, err := commit(42, nil)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("store error becomes 500 with its message", func(t *testing.T) {
		v, err := commit("ignored", errors.New("boom"))
		assert.Empty(t, v)
		requireHTTPError(t, err, http.StatusInternalServerError, "boom")
	})

	t.Run("http errors pass unchanged", func(t *testing.T) {
		orig := errs.NewUnauthorizedError("nope", true)
		_, err := commit(0, orig)
		assert.Same(t, orig, err)
	})

	t.Run("commitErr", func(t *testing.T) {
		assert.NoError(t, commitErr(nil))
		requireHTTPError(t, commitErr(errors.New("boom")), http.StatusInternalServerError, "boom")
	})
}
