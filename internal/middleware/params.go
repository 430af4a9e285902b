package middleware

import (
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/validation"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDKey is where ObjectIDParam stores the parsed identifier.
const ObjectIDKey = "object_id"

// ParamMiddleware checks route parameters.
type ParamMiddleware struct {
	server *server.Server
}

func NewParamMiddleware(s *server.Server) *ParamMiddleware {
	return &ParamMiddleware{server: s}
}

// ObjectIDParam rejects requests whose route parameter name is not a valid
// ObjectID, returning onInvalid() instead of calling the handler. It runs
// before the body is read, so a malformed identifier wins over any other
// problem with the request.
//
// On success the parsed id is stored under ObjectIDKey; see GetObjectID.
func (pm *ParamMiddleware) ObjectIDParam(name string, onInvalid func() error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param(name)

			oid, err := validation.ParseObjectID(raw)
			if err != nil {
				GetLogger(c).Debug().
					Str("param", name).
					Str("value", raw).
					Msg("rejected malformed object id")
				return onInvalid()
			}

			c.Set(ObjectIDKey, oid)
			return next(c)
		}
	}
}

// GetObjectID returns the identifier stored by ObjectIDParam.
func GetObjectID(c echo.Context) (primitive.ObjectID, bool) {
	oid, ok := c.Get(ObjectIDKey).(primitive.ObjectID)
	return oid, ok
}
