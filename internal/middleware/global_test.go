package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	s := newTestServer(0)

	serve := func(t *testing.T, path string, handlerErr error) (int, errs.HTTPError) {
		t.Helper()

		e := echo.New()
		e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
		e.GET("/fail", func(c echo.Context) error { return handlerErr })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		var body errs.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	t.Run("http error is rendered as is", func(t *testing.T) {
		status, body := serve(t, "/fail", errs.NewUnauthorizedError("You do not have permission to edit this message", true))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "UNAUTHORIZED", body.Code)
		assert.Equal(t, "You do not have permission to edit this message", body.Message)
		assert.True(t, body.Override)
	})

	t.Run("plain error becomes a store failure", func(t *testing.T) {
		status, body := serve(t, "/fail", errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "connection reset", body.Message)
	})

	t.Run("unknown route", func(t *testing.T) {
		status, body := serve(t, "/missing", nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Route not found", body.Message)
	})
}

func TestToHTTPError(t *testing.T) {
	t.Run("echo error keeps its status", func(t *testing.T) {
		httpErr := toHTTPError(echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests"))

		assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
		assert.Equal(t, "TOO_MANY_REQUESTS", httpErr.Code)
		assert.Equal(t, "Too many requests", httpErr.Message)
	})

	t.Run("echo error without a string message", func(t *testing.T) {
		httpErr := toHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed))

		assert.Equal(t, http.StatusMethodNotAllowed, httpErr.Status)
		assert.Equal(t, "Method Not Allowed", httpErr.Message)
	})

	t.Run("wrapped http error", func(t *testing.T) {
		orig := errs.NewBadRequestError("Message is required", true, nil, nil)
		assert.Same(t, orig, toHTTPError(fmt.Errorf("handler: %w", orig)))
	})
}
