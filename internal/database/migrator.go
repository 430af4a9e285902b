package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Embed all SQL files under migrations/ at compile time so the binary
// carries its own schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate prepares the configured backend for use.
//
// Postgres gets the embedded tern migrations; Mongo gets its indexes.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	if cfg.Database.IsMongo() {
		m, err := NewMongo(cfg, logger)
		if err != nil {
			return err
		}
		defer m.Close(context.Background())

		return m.EnsureIndexes(ctx)
	}

	return migratePostgres(ctx, logger, cfg)
}

// migratePostgres runs the embedded migrations using jackc/tern over a
// single connection.
func migratePostgres(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.Database.URI)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// EnsureIndexes creates the unique email index on users. Creating an index
// that already exists is a no-op.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	name, err := m.DB.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	if err != nil {
		return fmt.Errorf("creating users email index: %w", err)
	}

	m.log.Info().Str("index", name).Msg("mongo indexes ensured")
	return nil
}
