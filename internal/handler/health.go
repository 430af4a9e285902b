package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/todo-api/internal/middleware"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies are
// reachable, for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth pings the document store and, when configured, Redis.
//
// 200 when every required check passes, 503 otherwise. Redis is reported
// but never makes the service unhealthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"service":     h.serviceName(),
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"driver":      h.server.Config.Database.Driver,
		"checks":      checks,
	}

	isHealthy := true

	if h.checkEnabled("database") {
		ok, result := h.runCheck(c.Request().Context(), &logger, "database", h.server.Ping)
		checks["database"] = result
		isHealthy = isHealthy && ok
	}

	if h.server.Redis != nil && h.checkEnabled("redis") {
		_, result := h.runCheck(c.Request().Context(), &logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
		checks["redis"] = result
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck runs one dependency probe under the configured timeout.
func (h *HealthHandler) runCheck(
	parent context.Context,
	logger *zerolog.Logger,
	name string,
	probe func(ctx context.Context) error,
) (bool, map[string]any) {
	ctx, cancel := context.WithTimeout(parent, h.checkTimeout())
	defer cancel()

	checkStart := time.Now()
	err := probe(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordFailure(map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return false, map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("dependency health check passed")

	return true, map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}
}

// recordFailure sends a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordFailure(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}

func (h *HealthHandler) checkEnabled(name string) bool {
	obs := h.server.Config.Observability
	if obs == nil {
		return true
	}
	return obs.CheckEnabled(name)
}

func (h *HealthHandler) checkTimeout() time.Duration {
	obs := h.server.Config.Observability
	if obs == nil || obs.HealthChecks.Timeout <= 0 {
		return defaultCheckTimeout
	}
	return obs.HealthChecks.Timeout
}

func (h *HealthHandler) serviceName() string {
	if obs := h.server.Config.Observability; obs != nil {
		return obs.ServiceName
	}
	return ""
}
