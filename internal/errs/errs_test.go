package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	unauthorized := NewUnauthorizedError("You do not have permission to edit this message", true)
	assert.Equal(t, http.StatusUnauthorized, unauthorized.Status)
	assert.Equal(t, "UNAUTHORIZED", unauthorized.Code)
	assert.True(t, unauthorized.Override)

	code := "MESSAGE_REQUIRED"
	badRequest := NewBadRequestError("Message is required", true, &code, []FieldError{{Field: "message", Error: "is required"}})
	assert.Equal(t, http.StatusBadRequest, badRequest.Status)
	assert.Equal(t, code, badRequest.Code)
	assert.Len(t, badRequest.Errors, 1)

	assert.Equal(t, "BAD_REQUEST", NewBadRequestError("x", false, nil, nil).Code)
	assert.Equal(t, "NOT_FOUND", NewNotFoundError("Route not found", false, nil).Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestNewStoreError(t *testing.T) {
	code := "POST_NOT_FOUND"
	err := NewStoreError("Post not found", &code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Post not found", err.Message)
	assert.Equal(t, code, err.Code)
	assert.False(t, err.Override)

	assert.Equal(t, "INTERNAL_SERVER_ERROR", NewStoreError("boom", nil).Code)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewUnauthorizedError("nope", true))
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "nope", httpErr.Error())
}

func TestWithMessage(t *testing.T) {
	orig := NewUnauthorizedError("a", true)
	copied := orig.WithMessage("b")

	assert.Equal(t, "a", orig.Message)
	assert.Equal(t, "b", copied.Message)
	assert.Equal(t, orig.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
