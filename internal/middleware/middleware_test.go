package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &logger,
	}
}

func runErrorHandler(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/", nil), rec)

	NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler(err, c)
	return rec
}

func TestGlobalErrorHandler_NoBody(t *testing.T) {
	rec := runErrorHandler(t, http.MethodGet, errs.NewEmptyNotFoundError())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGlobalErrorHandler_PlainText(t *testing.T) {
	rec := runErrorHandler(t, http.MethodGet, errs.NewNotFoundError("Id not valid", false, nil).AsPlainText())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Id not valid", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestGlobalErrorHandler_JSONShape(t *testing.T) {
	rec := runErrorHandler(t, http.MethodPost, errs.NewPersistenceError(errors.New("E11000 duplicate key")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body.Code)
	assert.Equal(t, "E11000 duplicate key", body.Message)
	assert.Equal(t, http.StatusBadRequest, body.Status)
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	rec := runErrorHandler(t, http.MethodGet, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestGlobalErrorHandler_DriverErrors(t *testing.T) {
	rec := runErrorHandler(t, http.MethodPost, &pgconn.PgError{Code: "42P01", Message: `relation "todos" does not exist`})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `relation \"todos\" does not exist`)
}

func TestGlobalErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	rec := runErrorHandler(t, http.MethodGet, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(errs.NewEmptyNotFoundError()))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusBadRequest, statusOf(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("x")))
}

func TestObjectIDParam(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler

	pm := NewParamMiddleware(newTestServer())
	e.GET("/things/:id", func(c echo.Context) error {
		oid, ok := GetObjectID(c)
		require.True(t, ok)
		return c.String(http.StatusOK, oid.Hex())
	}, pm.ObjectIDParam("id", func() error { return errs.NewEmptyNotFoundError() }))

	id := primitive.NewObjectID().Hex()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/"+id, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/123", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequestIDAndContextLogger(t *testing.T) {
	e := echo.New()
	ce := NewContextEnhancer(newTestServer())

	var seenID string
	var hasLogger bool
	e.GET("/", func(c echo.Context) error {
		seenID = GetRequestID(c)
		_, hasLogger = c.Get(LoggerKey).(*zerolog.Logger)
		assert.NotNil(t, LoggerFromContext(c.Request().Context()))
		return c.NoContent(http.StatusOK)
	}, RequestID(), ce.EnhanceContext())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seenID)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.True(t, hasLogger)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRecover_CatchesPanicsInLaterMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	s := newTestServer()
	s.Logger = &logger

	global := NewGlobalMiddlewares(s)
	exploding := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			panic("tracing blew up")
		}
	}

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(RequestID(), global.Recover(), exploding)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	require.NotPanics(t, func() { e.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, logs.String(), "recovered from panic")
	assert.Contains(t, logs.String(), "tracing blew up")
}
