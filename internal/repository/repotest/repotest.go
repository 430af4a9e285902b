// Package repotest provides in-memory repositories for tests.
//
// Both stores are safe for concurrent use. Setting Err makes every
// subsequent call fail with it.
package repotest

import (
	"context"
	"sync"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todos is an in-memory repository.TodoRepository keeping insertion order.
type Todos struct {
	mu    sync.Mutex
	items []model.Todo
	Err   error
}

var _ repository.TodoRepository = (*Todos)(nil)

func NewTodos(todos ...model.Todo) *Todos {
	return &Todos{items: append([]model.Todo(nil), todos...)}
}

func (r *Todos) Create(_ context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}
	r.items = append(r.items, *todo)

	created := *todo
	return &created, nil
}

func (r *Todos) List(_ context.Context) ([]model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	return append([]model.Todo{}, r.items...), nil
}

func (r *Todos) GetByID(_ context.Context, id primitive.ObjectID) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	todo := r.items[i]
	return &todo, nil
}

func (r *Todos) DeleteByID(_ context.Context, id primitive.ObjectID) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	todo := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	return &todo, nil
}

func (r *Todos) UpdateByID(_ context.Context, id primitive.ObjectID, update model.TodoUpdate) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	if update.Text != nil {
		r.items[i].Text = *update.Text
	}
	r.items[i].Completed = update.Completed
	r.items[i].CompletedAt = update.CompletedAt

	todo := r.items[i]
	return &todo, nil
}

func (r *Todos) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.items = nil
	return nil
}

func (r *Todos) InsertMany(_ context.Context, todos []model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for i := range todos {
		if todos[i].ID.IsZero() {
			todos[i].ID = primitive.NewObjectID()
		}
		r.items = append(r.items, todos[i])
	}
	return nil
}

// Len returns the number of stored todos.
func (r *Todos) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Todos) index(id primitive.ObjectID) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Users is an in-memory repository.UserRepository.
type Users struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]model.User
	Err   error
}

var _ repository.UserRepository = (*Users)(nil)

func NewUsers(users ...model.User) *Users {
	r := &Users{items: make(map[primitive.ObjectID]model.User, len(users))}
	for _, u := range users {
		r.items[u.ID] = u
	}
	return r
}

func (r *Users) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.items[user.ID] = *user

	created := *user
	return &created, nil
}

func (r *Users) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	user, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *Users) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.items = make(map[primitive.ObjectID]model.User)
	return nil
}

// Len returns the number of stored users.
func (r *Users) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
