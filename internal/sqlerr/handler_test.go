package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
		Message:        "duplicate key value violates unique constraint",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestHandleError_CheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23514",
		TableName:  "todos",
		ColumnName: "text",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, "TODO_INVALID", httpErr.Code)
	assert.Equal(t, "The Text value does not meet required conditions", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "todos",
		ColumnName: "text",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, "TODO_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "text", httpErr.Errors[0].Field)
}

func TestHandleError_OtherPgErrorKeepsDriverMessage(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:     "42P01",
		Severity: "ERROR",
		Message:  `relation "todos" does not exist`,
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, `relation "todos" does not exist`)
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("get todo: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, httpErr.NoBody)
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	original := errs.NewEmptyNotFoundError()
	assert.Same(t, original, HandleError(original))

	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "dial tcp: connection refused", httpErr.Message)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, Other, MapCode("99999"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("weird"))

	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})
	assert.Equal(t, ForeignKeyViolation, ErrCode(converted))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}
