package repository

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var todoRowColumns = []string{"id", "text", "completed", "completed_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestTodoPostgresRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO")).
		WithArgs(id.Hex(), "walk the dog", false, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(todoRowColumns).
			AddRow(id.Hex(), "walk the dog", false, (*int64)(nil)))

	todo, err := repo.Create(context.Background(), &model.Todo{ID: id, Text: "walk the dog"})
	require.NoError(t, err)
	assert.Equal(t, id, todo.ID)
	assert.Nil(t, todo.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_CreateCheckViolation(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO")).
		WithArgs(pgxmock.AnyArg(), "", false, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23514", TableName: "todos", ColumnName: "text"})

	_, err := repo.Create(context.Background(), &model.Todo{Text: ""})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "TODO_INVALID", httpErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)
	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	completedAt := int64(333)

	mock.ExpectQuery(regexp.QuoteMeta("FROM")).
		WillReturnRows(pgxmock.NewRows(todoRowColumns).
			AddRow(first.Hex(), "First test todo", false, (*int64)(nil)).
			AddRow(second.Hex(), "Second test todo", true, &completedAt))

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, first, todos[0].ID)
	require.NotNil(t, todos[1].CompletedAt)
	assert.Equal(t, int64(333), *todos[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_ListEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM")).
		WillReturnRows(pgxmock.NewRows(todoRowColumns))

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoPostgresRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE")).
		WithArgs(id.Hex()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_DeleteByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM todos")).
		WithArgs(id.Hex()).
		WillReturnRows(pgxmock.NewRows(todoRowColumns).
			AddRow(id.Hex(), "gone", false, (*int64)(nil)))

	todo, err := repo.DeleteByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "gone", todo.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_UpdateByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)
	id := primitive.NewObjectID()
	completedAt := int64(1700000000000)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos")).
		WithArgs(id.Hex(), pgxmock.AnyArg(), true, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(todoRowColumns).
			AddRow(id.Hex(), "same text", true, &completedAt))

	todo, err := repo.UpdateByID(context.Background(), id, model.TodoUpdate{
		Completed:   true,
		CompletedAt: &completedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, "same text", todo.Text)
	assert.True(t, todo.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_UpdateByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)

	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos")).
		WithArgs(id.Hex(), pgxmock.AnyArg(), false, pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateByID(context.Background(), id, model.TodoUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_DeleteAllAndInsertMany(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(regexp.QuoteMeta("UNNEST")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, repo.DeleteAll(context.Background()))

	todos := []model.Todo{{Text: "a"}, {Text: "b"}}
	require.NoError(t, repo.InsertMany(context.Background(), todos))
	assert.False(t, todos[0].ID.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoPostgresRepository_ConnectionFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTodoPostgresRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).
		WillReturnError(errors.New("connection refused"))

	err := repo.DeleteAll(context.Background())

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "connection refused", httpErr.Message)
}
