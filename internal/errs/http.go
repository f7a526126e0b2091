package errs

import (
	"net/http"
)

func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// New builds an HTTPError for an arbitrary status.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    codeFor(status),
		Message: message,
		Status:  status,
	}
}

// Wrap builds an HTTPError whose message is err's text verbatim.
//
// The original error stays reachable through errors.Is / errors.As.
func Wrap(status int, err error) *HTTPError {
	return &HTTPError{
		Code:    codeFor(status),
		Message: err.Error(),
		Status:  status,
		cause:   err,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := codeFor(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := codeFor(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 with the generic status text.
//
// Use Wrap(http.StatusInternalServerError, err) when the underlying message
// should reach the client.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
