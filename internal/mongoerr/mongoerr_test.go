package mongoerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_NoDocuments(t *testing.T) {
	httpErr := asHTTPError(t, HandleError("todos", fmt.Errorf("find: %w", mongo.ErrNoDocuments)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, httpErr.NoBody)
}

func TestHandleError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	httpErr := asHTTPError(t, HandleError("users", dup))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Contains(t, httpErr.Message, "E11000")
}

func TestHandleError_DocumentValidation(t *testing.T) {
	invalid := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 121, Message: "Document failed validation"}},
	}

	httpErr := asHTTPError(t, HandleError("todos", invalid))
	assert.Equal(t, "TODO_INVALID", httpErr.Code)
}

func TestHandleError_FallbackKeepsRawMessage(t *testing.T) {
	httpErr := asHTTPError(t, HandleError("todos", errors.New("server selection timeout")))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Equal(t, "server selection timeout", httpErr.Message)
}

func TestHandleError_PassThrough(t *testing.T) {
	original := errs.NewEmptyNotFoundError()
	assert.Same(t, original, HandleError("todos", original))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "TODO_INVALID", errorCode("todos", "INVALID"))
	assert.Equal(t, "RECORD_ERROR", errorCode("", "ERROR"))
}
