package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-crudkit/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.Wrap(http.StatusInternalServerError, fmt.Errorf("querying users: %w", cause))

	assert.Equal(t, "querying users: connection refused", err.Error())
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPError_Is(t *testing.T) {
	var target *errs.HTTPError
	err := fmt.Errorf("wrapped: %w", errs.NewNotFoundError("User not found", nil))

	assert.True(t, errors.Is(err, &errs.HTTPError{}))
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, http.StatusNotFound, target.Status)
}

func TestFormatFieldErrors(t *testing.T) {
	got := errs.FormatFieldErrors([]errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "email", Error: "must be a valid email address"},
		{Error: "payload is empty"},
	})
	assert.Equal(t, "name: is required; email: must be a valid email address; payload is empty", got)
}

func TestNewBadRequestError(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := errs.NewBadRequestError("A user with this Email already exists", &code, nil)

	assert.Equal(t, code, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "A user with this Email already exists", err.Error())
}
