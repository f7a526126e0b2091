package sqlerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-crudkit/internal/errs"
	"github.com/deppfellow/go-crudkit/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := sqlerr.NotFound("users", 99999)

	assert.Equal(t, "User with id 99999 not found", err.Error())
	assert.True(t, sqlerr.IsNotFound(err))
	assert.True(t, sqlerr.IsNotFound(fmt.Errorf("finding user: %w", err)))
	assert.False(t, sqlerr.IsNotFound(errors.New("boom")))
}

func TestWrap(t *testing.T) {
	t.Run("Should convert postgres errors and keep the driver message", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			Severity:       "ERROR",
			Message:        `duplicate key value violates unique constraint "users_email_key"`,
			ConstraintName: "users_email_key",
		}

		err := sqlerr.Wrap("users", pgErr)

		var sqlErr *sqlerr.Error
		require.True(t, errors.As(err, &sqlErr))
		assert.Equal(t, sqlerr.UniqueViolation, sqlErr.Code)
		assert.Equal(t, "users", sqlErr.TableName)
		assert.Equal(t, pgErr.Message, err.Error())
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("Should prefix other errors with the table", func(t *testing.T) {
		err := sqlerr.Wrap("posts", errors.New("conn closed"))
		assert.Equal(t, "posts: conn closed", err.Error())
		assert.Equal(t, sqlerr.Other, sqlerr.ErrCode(err))
	})

	t.Run("Should pass nil through", func(t *testing.T) {
		assert.NoError(t, sqlerr.Wrap("posts", nil))
	})
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.MapCode("23503"))
	assert.Equal(t, sqlerr.NotNullViolation, sqlerr.MapCode("23502"))
	assert.Equal(t, sqlerr.ConnectionException, sqlerr.MapCode("08006"))
	assert.Equal(t, sqlerr.Other, sqlerr.MapCode("XX000"))
	assert.Equal(t, sqlerr.SeverityFatal, sqlerr.MapSeverity("FATAL"))
	assert.Equal(t, sqlerr.SeverityError, sqlerr.MapSeverity("weird"))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    string
	}{
		{
			name:    "not found",
			err:     fmt.Errorf("finding post: %w", sqlerr.NotFound("posts", 3)),
			status:  http.StatusNotFound,
			message: "Post with id 3 not found",
			code:    "NOT_FOUND",
		},
		{
			name:    "unique violation",
			err:     sqlerr.Wrap("users", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
			code:    "INTERNAL_SERVER_ERROR",
		},
		{
			name:    "raw postgres error",
			err:     &pgconn.PgError{Code: "23503", TableName: "posts", ColumnName: "user_id"},
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
			code:    "INTERNAL_SERVER_ERROR",
		},
		{
			name:    "bare no rows",
			err:     pgx.ErrNoRows,
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
			code:    "INTERNAL_SERVER_ERROR",
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
			code:    "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(sqlerr.HandleError(tt.err), &httpErr))
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}

	t.Run("Should return HTTP errors unchanged", func(t *testing.T) {
		in := errs.NewBadRequestError("nope", nil, nil)
		assert.Same(t, in, sqlerr.HandleError(in))
	})
}
