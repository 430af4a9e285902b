package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userColumns = `id, email, password, tokens`

// UserPostgresRepository keeps users in the "users" table. Tokens are
// stored as a JSONB array.
type UserPostgresRepository struct {
	db DBTX
}

func NewUserPostgresRepository(db DBTX) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Tokens == nil {
		user.Tokens = []model.Token{}
	}

	stmt := `
		INSERT INTO
			users (id, email, password, tokens)
		VALUES
			($1, $2, $3, $4)
		RETURNING
			` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, stmt, user.ID.Hex(), user.Email, user.Password, user.Tokens))
	if err != nil {
		return nil, handlePgError(err)
	}

	return created, nil
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	stmt := `
		SELECT
			` + userColumns + `
		FROM
			users
		WHERE
			id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, stmt, id.Hex()))
	if err != nil {
		return nil, handlePgError(err)
	}

	return user, nil
}

func (r *UserPostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users`); err != nil {
		return handlePgError(err)
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		user model.User
		id   string
	)

	if err := row.Scan(&id, &user.Email, &user.Password, &user.Tokens); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", id, err)
	}
	user.ID = oid

	return &user, nil
}
