package service

import (
	"context"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users repository.UserRepository
	auth  *AuthService
}

func NewUserService(users repository.UserRepository, auth *AuthService) *UserService {
	return &UserService{
		users: users,
		auth:  auth,
	}
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create stores a user with a hashed password. When withToken is set the
// user also gets one auth token.
func (s *UserService) Create(ctx context.Context, id primitive.ObjectID, email, password string, withToken bool) (*model.User, error) {
	if id.IsZero() {
		id = primitive.NewObjectID()
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       id,
		Email:    email,
		Password: hash,
		Tokens:   []model.Token{},
	}

	if withToken {
		token, err := s.auth.GenerateAuthToken(id)
		if err != nil {
			return nil, err
		}
		user.Tokens = append(user.Tokens, token)
	}

	return s.users.Create(ctx, user)
}
