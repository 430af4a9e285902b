package service

import (
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
)

type Services struct {
	Auth    *AuthService
	Todo    *TodoService
	User    *UserService
	Fixture *FixtureService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)
	userService := NewUserService(repos.Users, authService)

	return &Services{
		Auth:    authService,
		Todo:    NewTodoService(repos.Todos),
		User:    userService,
		Fixture: NewFixtureService(repos.Todos, repos.Users, userService, s.Logger),
	}, nil
}
