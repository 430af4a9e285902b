package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Collection names.
const (
	TodosCollection = "todos"
	UsersCollection = "users"
)

// Mongo wraps the Mongo client and the application database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// NewMongo connects to MongoDB, pings the primary and returns the handle.
//
// The database name comes from cfg.Database.Name, or the URI path when the
// name is empty.
func NewMongo(cfg *config.Config, logger *zerolog.Logger) (*Mongo, error) {
	name, err := databaseName(cfg.Database)
	if err != nil {
		return nil, err
	}

	threshold := time.Duration(0)
	if cfg.Observability != nil {
		threshold = cfg.Observability.Logging.SlowQueryThreshold
	}

	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetMonitor(NewCommandMonitor(logger, threshold))

	if cfg.Database.MaxOpenConns > 0 {
		clientOptions.SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns))
	}
	if cfg.Database.MaxIdleConns > 0 {
		clientOptions.SetMinPoolSize(uint64(cfg.Database.MaxIdleConns))
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		clientOptions.SetMaxConnIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Str("database", name).Msg("connected to mongo")

	return &Mongo{
		Client: client,
		DB:     client.Database(name),
		log:    logger,
	}, nil
}

// databaseName resolves the Mongo database name.
func databaseName(cfg config.DatabaseConfig) (string, error) {
	if cfg.Name != "" {
		return cfg.Name, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", fmt.Errorf("failed to parse mongo uri: %w", err)
	}
	if cs.Database == "" {
		return "", fmt.Errorf("mongo uri %q names no database and database.name is empty", cfg.URI)
	}

	return cs.Database, nil
}

// Ping verifies connectivity to the primary.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	m.log.Info().Msg("disconnecting from mongo")
	return m.Client.Disconnect(ctx)
}

// NewCommandMonitor logs Mongo commands.
//
// Commands slower than threshold are logged at warn, failed commands at
// error and everything else at debug. A zero threshold disables the slow
// command warning.
func NewCommandMonitor(logger *zerolog.Logger, threshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			ev := logger.Debug()
			if threshold > 0 && e.Duration >= threshold {
				ev = logger.Warn().Bool("slow", true)
			}

			ev.Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Error().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}
