package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/lib/auth"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository/repotest"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "pqr987"

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Auth: config.AuthConfig{SecretKey: testSecret}},
		Logger: &logger,
	}
}

func TestFixtureService_Seed(t *testing.T) {
	s := newTestServer()
	todos := repotest.NewTodos(model.Todo{ID: primitive.NewObjectID(), Text: "stale"})
	users := repotest.NewUsers(model.User{ID: primitive.NewObjectID(), Email: "old@example.com"})
	authService := NewAuthService(s)
	fixtures := NewFixtureService(todos, users, NewUserService(users, authService), s.Logger)

	set := DefaultFixtures()
	seeded, err := fixtures.Seed(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, 2, todos.Len())
	assert.Equal(t, 2, users.Len())
	require.Len(t, seeded, 2)

	listed, err := todos.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "First test todo", listed[0].Text)
	assert.Nil(t, listed[0].CompletedAt)
	assert.True(t, listed[1].Completed)
	require.NotNil(t, listed[1].CompletedAt)
	assert.Equal(t, int64(333), *listed[1].CompletedAt)

	penny := seeded[0]
	assert.Equal(t, set.Users[0].ID, penny.ID)
	assert.Equal(t, "penny@example.com", penny.Email)
	assert.True(t, auth.CheckPasswordHash("abhd123", penny.Password))
	require.Len(t, penny.Tokens, 1)
	assert.Equal(t, model.AccessAuth, penny.Tokens[0].Access)

	userID, access, err := authService.VerifyToken(penny.Tokens[0].Token)
	require.NoError(t, err)
	assert.Equal(t, penny.ID.Hex(), userID)
	assert.Equal(t, model.AccessAuth, access)

	gen := seeded[1]
	assert.Empty(t, gen.Tokens)
	assert.True(t, auth.CheckPasswordHash("poiu123", gen.Password))
}

func TestFixtureService_SeedStopsOnStorageError(t *testing.T) {
	s := newTestServer()
	todos := repotest.NewTodos()
	todos.Err = errors.New("not primary")
	users := repotest.NewUsers()
	fixtures := NewFixtureService(todos, users, NewUserService(users, NewAuthService(s)), s.Logger)

	_, err := fixtures.Seed(context.Background(), DefaultFixtures())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not primary")
	assert.Equal(t, 0, users.Len())
}

func TestUserService_Get(t *testing.T) {
	id := primitive.NewObjectID()
	users := repotest.NewUsers(model.User{ID: id, Email: "gen@example.com"})
	svc := NewUserService(users, NewAuthService(newTestServer()))

	user, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "gen@example.com", user.Email)
}
