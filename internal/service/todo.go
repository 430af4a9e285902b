package service

import (
	"context"
	"strings"
	"time"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TodoService owns the todo rules: text is trimmed, and completedAt is set
// exactly when a todo is completed.
type TodoService struct {
	todos repository.TodoRepository
	now   func() time.Time
}

func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{
		todos: todos,
		now:   time.Now,
	}
}

// Create stores a new, not yet completed todo.
func (s *TodoService) Create(ctx context.Context, text string) (*model.Todo, error) {
	return s.todos.Create(ctx, &model.Todo{
		Text:        strings.TrimSpace(text),
		Completed:   false,
		CompletedAt: nil,
	})
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.todos.List(ctx)
}

func (s *TodoService) Get(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

func (s *TodoService) Delete(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	return s.todos.DeleteByID(ctx, id)
}

// Update applies a partial update. Only text and completed are honored;
// see BuildTodoUpdate.
func (s *TodoService) Update(ctx context.Context, id primitive.ObjectID, text *string, completed any) (*model.Todo, error) {
	return s.todos.UpdateByID(ctx, id, BuildTodoUpdate(text, completed, s.now()))
}

// BuildTodoUpdate turns the whitelisted fields of a patch into the update
// written to storage.
//
// completed counts only when it is the boolean true; then completedAt is now
// in epoch milliseconds. Any other value, including absence, resets the todo
// to not completed with a null completedAt.
func BuildTodoUpdate(text *string, completed any, now time.Time) model.TodoUpdate {
	var update model.TodoUpdate

	if text != nil {
		trimmed := strings.TrimSpace(*text)
		update.Text = &trimmed
	}

	if done, ok := completed.(bool); ok && done {
		completedAt := now.UnixMilli()
		update.Completed = true
		update.CompletedAt = &completedAt
	}

	return update
}
