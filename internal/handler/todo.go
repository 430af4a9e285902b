package handler

import (
	"errors"
	"strings"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/deppfellow/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r *CreateTodoRequest) Validate() error {
	r.Text = strings.TrimSpace(r.Text)
	return validation.Struct(r)
}

// UpdateTodoRequest is the body of PATCH /todos/:id. Any other field in the
// body is dropped during decoding.
//
// Completed is decoded as is: only the JSON boolean true completes a todo.
type UpdateTodoRequest struct {
	Text      *string `json:"text" validate:"omitnil,min=1"`
	Completed any     `json:"completed"`
}

func (r *UpdateTodoRequest) Validate() error {
	if r.Text != nil {
		trimmed := strings.TrimSpace(*r.Text)
		r.Text = &trimmed
	}
	return validation.Struct(r)
}

// EmptyRequest is used by routes without a body.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

type TodoResponse struct {
	Todo *model.Todo `json:"todo"`
}

type TodoListResponse struct {
	Todos []model.Todo `json:"todos"`
}

type TodoHandler struct {
	Handler
	todoService *service.TodoService
}

func NewTodoHandler(s *server.Server, todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler:     NewHandler(s),
		todoService: todoService,
	}
}

// InvalidTodoID is the response for malformed todo ids: 404, no body.
func InvalidTodoID() error {
	return errs.NewEmptyNotFoundError()
}

// CreateTodo stores a new todo and returns it.
func (h *TodoHandler) CreateTodo(c echo.Context, req *CreateTodoRequest) (*model.Todo, error) {
	return h.todoService.Create(c.Request().Context(), req.Text)
}

// ListTodos returns every todo.
func (h *TodoHandler) ListTodos(c echo.Context, _ *EmptyRequest) (*TodoListResponse, error) {
	todos, err := h.todoService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &TodoListResponse{Todos: todos}, nil
}

// GetTodo returns one todo. Storage failures are logged and answered with
// an empty 400.
func (h *TodoHandler) GetTodo(c echo.Context, _ *EmptyRequest) (*TodoResponse, error) {
	id, err := objectID(c, errs.NewEmptyNotFoundError)
	if err != nil {
		return nil, err
	}

	todo, err := h.todoService.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, errs.NewEmptyNotFoundError()
	case err != nil:
		middleware.GetLogger(c).Error().
			Err(err).
			Str("todo_id", id.Hex()).
			Msg("failed to load todo")
		return nil, errs.NewEmptyBadRequestError()
	}

	return &TodoResponse{Todo: todo}, nil
}

// DeleteTodo removes one todo and returns what was removed.
func (h *TodoHandler) DeleteTodo(c echo.Context, _ *EmptyRequest) (*TodoResponse, error) {
	id, err := objectID(c, errs.NewEmptyNotFoundError)
	if err != nil {
		return nil, err
	}

	todo, err := h.todoService.Delete(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewEmptyNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &TodoResponse{Todo: todo}, nil
}

// UpdateTodo applies a partial update and returns the updated todo.
func (h *TodoHandler) UpdateTodo(c echo.Context, req *UpdateTodoRequest) (*TodoResponse, error) {
	id, err := objectID(c, errs.NewEmptyNotFoundError)
	if err != nil {
		return nil, err
	}

	todo, err := h.todoService.Update(c.Request().Context(), id, req.Text, req.Completed)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewEmptyNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &TodoResponse{Todo: todo}, nil
}
