// Package server defines the Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the document store (Mongo client or pgx pool)
//   - the optional redis client
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/todo-api/internal/logger"
)

// Server is the application container that holds shared resources.
//
// Exactly one of DB and Mongo is set, matching Config.Database.Driver.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService holds the New Relic application, if configured.
	LoggerService *loggerPkg.LoggerService

	// DB is the PostgreSQL pool (postgres driver only).
	DB *database.Database

	// Mongo is the Mongo client and database (mongo driver only).
	Mongo *database.Mongo

	// Redis is nil when no redis address is configured.
	Redis *redis.Client

	httpServer *http.Server
}

// New constructs a Server and connects its dependencies.
//
// The HTTP server is not started here; see SetupHTTPServer and Start.
// A Redis failure does not block startup, a database failure does.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	if cfg.Database.IsMongo() {
		m, err := database.NewMongo(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		server.Mongo = m
	} else {
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		server.DB = db
	}

	if cfg.Redis.Address != "" {
		server.Redis = newRedis(cfg, logger, loggerService)
	}

	return server, nil
}

// newRedis creates the redis client. Connections are lazy; the ping only
// reports reachability.
func newRedis(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
	}

	return redisClient
}

// Ping checks the active document store.
func (s *Server) Ping(ctx context.Context) error {
	switch {
	case s.Mongo != nil:
		return s.Mongo.Ping(ctx)
	case s.DB != nil:
		return s.DB.Ping(ctx)
	default:
		return errors.New("no database configured")
	}
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("driver", s.Config.Database.Driver).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, then closes the store and redis.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			return fmt.Errorf("failed to close mongo connection: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis connection: %w", err)
		}
	}

	return nil
}
