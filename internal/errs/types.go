package errs

import (
	"net/http"
)

// NewUnauthorizedError creates a 401 HTTPError.
//
// Used when the requesting user does not own the comment being edited or
// deleted. override controls whether the client shows message verbatim.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400 HTTPError.
//
//   - code: optional custom code (defaults to "BAD_REQUEST")
//   - errors: optional field errors
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 HTTPError. Only unknown routes produce it;
// missing rows go through the store-failure path instead.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 HTTPError with the generic status text.
//
// Used for panics and errors that never touched the store.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewStoreError creates a 500 HTTPError that carries the store's own message.
//
// Every data-access failure (missing row, constraint violation, connectivity)
// is reported this way. code may be nil for the generic
// "INTERNAL_SERVER_ERROR" code.
func NewStoreError(message string, code *string) *HTTPError {
	err := NewInternalServerError()
	if code != nil {
		err.Code = *code
	}
	err.Message = message
	return err
}
