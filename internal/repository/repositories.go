package repository

import (
	"github.com/deppfellow/todo-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Todos TodoRepository
	Users UserRepository
}

// NewRepositories builds the repositories for the backend the server
// connected to.
func NewRepositories(s *server.Server) *Repositories {
	if s.Mongo != nil {
		return &Repositories{
			Todos: NewTodoMongoRepository(s.Mongo.DB),
			Users: NewUserMongoRepository(s.Mongo.DB),
		}
	}

	return &Repositories{
		Todos: NewTodoPostgresRepository(s.DB.Pool),
		Users: NewUserPostgresRepository(s.DB.Pool),
	}
}
