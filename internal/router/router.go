// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/todo-api/internal/handler"
	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route.
//
// Middleware order matters: the request id must exist before recovery,
// tracing and the context logger pick it up, recovery must wrap every other
// middleware, and the request logger must see the request-scoped logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Global.Recover(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
	)

	registerSystemRoutes(router, h)
	registerTodoRoutes(router, h.Todo, middlewares.Params)
	registerUserRoutes(router, h.User, middlewares.Params)

	return router
}

func registerTodoRoutes(r *echo.Echo, h *handler.TodoHandler, params *middleware.ParamMiddleware) {
	todos := r.Group("/todos")

	todoID := params.ObjectIDParam("id", handler.InvalidTodoID)

	todos.POST("", handler.Handle(h.Handler, h.CreateTodo, http.StatusOK))
	todos.GET("", handler.Handle(h.Handler, h.ListTodos, http.StatusOK))
	todos.GET("/:id", handler.Handle(h.Handler, h.GetTodo, http.StatusOK), todoID)
	todos.DELETE("/:id", handler.Handle(h.Handler, h.DeleteTodo, http.StatusOK), todoID)
	todos.PATCH("/:id", handler.Handle(h.Handler, h.UpdateTodo, http.StatusOK), todoID)
}

func registerUserRoutes(r *echo.Echo, h *handler.UserHandler, params *middleware.ParamMiddleware) {
	users := r.Group("/users")

	users.GET("/:id", handler.Handle(h.Handler, h.GetUser, http.StatusOK), params.ObjectIDParam("id", handler.InvalidUserID))
}
