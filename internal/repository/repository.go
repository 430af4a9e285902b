// Package repository handles all interactions with the document store.
//
// Each method performs exactly one storage operation. Absent documents are
// reported as ErrNotFound; every other failure comes back as an
// *errs.HTTPError produced by mongoerr or sqlerr, so callers can return it
// as is.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/todo-api/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the identifier.
var ErrNotFound = errors.New("document not found")

// TodoRepository stores todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error)

	// DeleteByID atomically removes the todo and returns what was removed.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error)

	// UpdateByID atomically applies update and returns the updated todo.
	UpdateByID(ctx context.Context, id primitive.ObjectID, update model.TodoUpdate) (*model.Todo, error)

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, todos []model.Todo) error
}

// UserRepository stores users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	DeleteAll(ctx context.Context) error
}
