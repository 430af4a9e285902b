package repository

import (
	"context"
	"errors"
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

var userRowColumns = []string{"id", "email", "password", "tokens"}

func TestUserPostgresRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserPostgresRepository(mock)
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("FROM")).
		WithArgs(id.Hex()).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(id.Hex(), "penny@example.com", "hash", []model.Token{{Access: model.AccessAuth, Token: "abc"}}))

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "penny@example.com", user.Email)
	require.Len(t, user.Tokens, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserPostgresRepository(mock)
	id := primitive.NewObjectID()

	mock.ExpectQuery(regexp.QuoteMeta("FROM")).
		WithArgs(id.Hex()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_CreateDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserPostgresRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO")).
		WithArgs(pgxmock.AnyArg(), "gen@example.com", "hash", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		})

	_, err := repo.Create(context.Background(), &model.User{Email: "gen@example.com", Password: "hash"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_DeleteAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserPostgresRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
