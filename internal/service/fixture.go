package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureUser is a user to seed along with its plain-text password.
type FixtureUser struct {
	ID        primitive.ObjectID
	Email     string
	Password  string
	WithToken bool
}

// Fixtures is the known data set used by the seed command and by
// integration runs.
type Fixtures struct {
	Todos []model.Todo
	Users []FixtureUser
}

// DefaultFixtures returns the standard data set with fresh ids.
func DefaultFixtures() Fixtures {
	completedAt := int64(333)

	return Fixtures{
		Todos: []model.Todo{
			{
				ID:   primitive.NewObjectID(),
				Text: "First test todo",
			},
			{
				ID:          primitive.NewObjectID(),
				Text:        "Second test todo",
				Completed:   true,
				CompletedAt: &completedAt,
			},
		},
		Users: []FixtureUser{
			{
				ID:        primitive.NewObjectID(),
				Email:     "penny@example.com",
				Password:  "abhd123",
				WithToken: true,
			},
			{
				ID:       primitive.NewObjectID(),
				Email:    "gen@example.com",
				Password: "poiu123",
			},
		},
	}
}

// FixtureService replaces the stored todos and users with a fixture set.
type FixtureService struct {
	todos  repository.TodoRepository
	users  repository.UserRepository
	user   *UserService
	logger *zerolog.Logger
}

func NewFixtureService(todos repository.TodoRepository, users repository.UserRepository, user *UserService, logger *zerolog.Logger) *FixtureService {
	return &FixtureService{
		todos:  todos,
		users:  users,
		user:   user,
		logger: logger,
	}
}

// Seed wipes both collections, then inserts fixtures. It returns the
// stored users.
func (s *FixtureService) Seed(ctx context.Context, fixtures Fixtures) ([]model.User, error) {
	if err := s.todos.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear todos: %w", err)
	}
	if err := s.todos.InsertMany(ctx, fixtures.Todos); err != nil {
		return nil, fmt.Errorf("failed to insert todos: %w", err)
	}

	if err := s.users.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}

	users := make([]model.User, 0, len(fixtures.Users))
	for _, u := range fixtures.Users {
		created, err := s.user.Create(ctx, u.ID, u.Email, u.Password, u.WithToken)
		if err != nil {
			return nil, fmt.Errorf("failed to insert user %s: %w", u.Email, err)
		}
		users = append(users, *created)
	}

	s.logger.Info().
		Int("todos", len(fixtures.Todos)).
		Int("users", len(users)).
		Msg("fixtures seeded")

	return users, nil
}
