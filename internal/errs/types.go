package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// String renders the field error as "field: message".
func (f FieldError) String() string {
	if f.Field == "" {
		return f.Error
	}
	return f.Field + ": " + f.Error
}

// FormatFieldErrors renders field errors as a single line of text.
func FormatFieldErrors(fieldErrors []FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.String())
	}
	return strings.Join(parts, "; ")
}

// HTTPError is the error type the HTTP layer understands.
//
// Fields:
//   - Code: machine-friendly code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: human-readable text written as the response body.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, if any.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`

	cause error
}

// Error returns the message so logging the error shows what the client sees.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error, if the HTTPError was built from one.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError (type match only).
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
