package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const todoColumns = `id, text, completed, completed_at`

// TodoPostgresRepository keeps todos in the "todos" table. Identifiers are
// stored as the 24 character hex form of the ObjectID.
type TodoPostgresRepository struct {
	db DBTX
}

func NewTodoPostgresRepository(db DBTX) *TodoPostgresRepository {
	return &TodoPostgresRepository{db: db}
}

func (r *TodoPostgresRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}

	stmt := `
		INSERT INTO
			todos (id, text, completed, completed_at)
		VALUES
			($1, $2, $3, $4)
		RETURNING
			` + todoColumns

	row := r.db.QueryRow(ctx, stmt, todo.ID.Hex(), todo.Text, todo.Completed, todo.CompletedAt)
	created, err := scanTodo(row)
	if err != nil {
		return nil, handlePgError(err)
	}

	return created, nil
}

func (r *TodoPostgresRepository) List(ctx context.Context) ([]model.Todo, error) {
	stmt := `
		SELECT
			` + todoColumns + `
		FROM
			todos
		ORDER BY
			created_at, id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, handlePgError(err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, handlePgError(err)
		}
		todos = append(todos, *todo)
	}
	if err := rows.Err(); err != nil {
		return nil, handlePgError(err)
	}

	return todos, nil
}

func (r *TodoPostgresRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	stmt := `
		SELECT
			` + todoColumns + `
		FROM
			todos
		WHERE
			id = $1`

	todo, err := scanTodo(r.db.QueryRow(ctx, stmt, id.Hex()))
	if err != nil {
		return nil, handlePgError(err)
	}

	return todo, nil
}

func (r *TodoPostgresRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	stmt := `
		DELETE FROM todos
		WHERE
			id = $1
		RETURNING
			` + todoColumns

	todo, err := scanTodo(r.db.QueryRow(ctx, stmt, id.Hex()))
	if err != nil {
		return nil, handlePgError(err)
	}

	return todo, nil
}

func (r *TodoPostgresRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update model.TodoUpdate) (*model.Todo, error) {
	stmt := `
		UPDATE todos
		SET
			text = COALESCE($2, text),
			completed = $3,
			completed_at = $4
		WHERE
			id = $1
		RETURNING
			` + todoColumns

	row := r.db.QueryRow(ctx, stmt, id.Hex(), update.Text, update.Completed, update.CompletedAt)
	todo, err := scanTodo(row)
	if err != nil {
		return nil, handlePgError(err)
	}

	return todo, nil
}

func (r *TodoPostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM todos`); err != nil {
		return handlePgError(err)
	}
	return nil
}

// InsertMany inserts all todos in a single statement.
func (r *TodoPostgresRepository) InsertMany(ctx context.Context, todos []model.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	ids := make([]string, len(todos))
	texts := make([]string, len(todos))
	completed := make([]bool, len(todos))
	completedAt := make([]*int64, len(todos))

	for i := range todos {
		if todos[i].ID.IsZero() {
			todos[i].ID = primitive.NewObjectID()
		}
		ids[i] = todos[i].ID.Hex()
		texts[i] = todos[i].Text
		completed[i] = todos[i].Completed
		completedAt[i] = todos[i].CompletedAt
	}

	stmt := `
		INSERT INTO
			todos (id, text, completed, completed_at)
		SELECT
			*
		FROM
			UNNEST($1::TEXT[], $2::TEXT[], $3::BOOLEAN[], $4::BIGINT[])`

	if _, err := r.db.Exec(ctx, stmt, ids, texts, completed, completedAt); err != nil {
		return handlePgError(err)
	}
	return nil
}

// scanTodo reads one todo row in todoColumns order.
func scanTodo(row pgx.Row) (*model.Todo, error) {
	var (
		todo model.Todo
		id   string
	)

	if err := row.Scan(&id, &todo.Text, &todo.Completed, &todo.CompletedAt); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stored todo id %q: %w", id, err)
	}
	todo.ID = oid

	return &todo, nil
}

// handlePgError maps no rows to ErrNotFound and everything else through
// sqlerr.
func handlePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return sqlerr.HandleError(err)
}
