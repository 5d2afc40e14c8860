package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

type commentPayload struct {
	PostID  string `param:"id" json:"-" validate:"required"`
	Message string `json:"message" validate:"required"`
	Tag     string `json:"tag" validate:"omitempty,max=3"`
}

func (p *commentPayload) Validate() error {
	return validate.Struct(p)
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts/p1/comments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("p1")
	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("binds params and body", func(t *testing.T) {
		var p commentPayload
		require.NoError(t, BindAndValidate(newContext(`{"message":"hi"}`), &p))
		assert.Equal(t, "p1", p.PostID)
		assert.Equal(t, "hi", p.Message)
	})

	t.Run("path id is not taken from the body", func(t *testing.T) {
		var p commentPayload
		require.NoError(t, BindAndValidate(newContext(`{"message":"hi","PostID":"other"}`), &p))
		assert.Equal(t, "p1", p.PostID)
	})

	for name, body := range map[string]string{
		"absent": `{}`,
		"null":   `{"message":null}`,
		"empty":  `{"message":""}`,
	} {
		t.Run("message "+name, func(t *testing.T) {
			var p commentPayload
			err := BindAndValidate(newContext(body), &p)

			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, "Message is required", httpErr.Message)
			assert.Equal(t, []errs.FieldError{{Field: "message", Error: "is required"}}, httpErr.Errors)
		})
	}

	t.Run("max length", func(t *testing.T) {
		var p commentPayload
		err := BindAndValidate(newContext(`{"message":"hi","tag":"toolong"}`), &p)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "Tag must not exceed 3 characters", httpErr.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		var p commentPayload
		err := BindAndValidate(newContext(`{"message":`), &p)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
	})
}
