package errs

import "strings"

// FieldError describes a single invalid request field.
//
//	{ "field": "message", "error": "is required" }
type FieldError struct {
	// Field is the lower-cased request field name (e.g. "message").
	Field string `json:"field"`

	// Error is the human-readable reason.
	Error string `json:"error"`
}

// HTTPError is the error type rendered by the API.
//
// It satisfies `error` and is serialized as-is:
//   - Code: machine-friendly code (e.g. "BAD_REQUEST", "COMMENT_NOT_FOUND").
//   - Message: human-readable message, shown by the client.
//   - Status: HTTP status code.
//   - Override: the client may display Message verbatim.
//   - Errors: per-field validation errors.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors (create/edit comment bodies).
	Errors []FieldError `json:"errors"`
}

// Error returns the message so logging an *HTTPError prints what the client sees.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only compares the type, not Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
