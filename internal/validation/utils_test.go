package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteRequest struct {
	Title string  `json:"title" validate:"required,min=3"`
	Body  *string `json:"body" validate:"omitnil,max=5"`
}

func (r *noteRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "title", Message: "is taken"}}
}

type opaqueRequest struct{}

func (r *opaqueRequest) Validate() error {
	return errors.New("something odd")
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	req := &noteRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"title":"groceries"}`), req))
	assert.Equal(t, "groceries", req.Title)
	assert.Nil(t, req.Body)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{"title":`), &noteRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_UnsupportedBodyIsIgnored(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/notes", strings.NewReader("groceries"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := requireHTTPError(t, BindAndValidate(c, &noteRequest{}))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{"body":"too long"}`), &noteRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "title", Error: "is required"},
		{Field: "body", Error: "must not exceed 5 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MinLength(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{"title":"ab"}`), &noteRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "must be at least 3 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{}`), &customRequest{}))
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is taken"}}, httpErr.Errors)
}

func TestBindAndValidate_OpaqueError(t *testing.T) {
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{}`), &opaqueRequest{}))
	assert.Equal(t, "something odd", httpErr.Message)
}

func TestObjectIDHelpers(t *testing.T) {
	assert.True(t, IsValidObjectID("5f1d7f3b9d3e2a1b2c3d4e5f"))
	assert.False(t, IsValidObjectID("123"))
	assert.False(t, IsValidObjectID("zzzzzzzzzzzzzzzzzzzzzzzz"))

	oid, err := ParseObjectID("5f1d7f3b9d3e2a1b2c3d4e5f")
	require.NoError(t, err)
	assert.Equal(t, "5f1d7f3b9d3e2a1b2c3d4e5f", oid.Hex())

	_, err = ParseObjectID("nope")
	assert.Error(t, err)
}
