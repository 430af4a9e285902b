package handler

import (
	"errors"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
)

// User lookups answer misses in plain text.
const (
	msgUserIDNotValid = "Id not valid"
	msgUserIDNotFound = "Id not found"
)

type UserResponse struct {
	User *model.User `json:"user"`
}

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

// InvalidUserID is the response for malformed user ids: 404 "Id not valid".
func InvalidUserID() error {
	return invalidUserID()
}

func invalidUserID() *errs.HTTPError {
	return errs.NewNotFoundError(msgUserIDNotValid, false, nil).AsPlainText()
}

// GetUser returns the public projection of one user.
func (h *UserHandler) GetUser(c echo.Context, _ *EmptyRequest) (*UserResponse, error) {
	id, err := objectID(c, invalidUserID)
	if err != nil {
		return nil, err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewNotFoundError(msgUserIDNotFound, false, nil).AsPlainText()
	}
	if err != nil {
		return nil, err
	}

	return &UserResponse{User: user}, nil
}
