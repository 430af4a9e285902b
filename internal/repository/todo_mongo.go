package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/mongoerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TodoMongoRepository keeps todos in the "todos" collection.
type TodoMongoRepository struct {
	coll *mongo.Collection
}

func NewTodoMongoRepository(db *mongo.Database) *TodoMongoRepository {
	return &TodoMongoRepository{coll: db.Collection(database.TodosCollection)}
}

func (r *TodoMongoRepository) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, todo); err != nil {
		return nil, r.handleError(err)
	}

	return todo, nil
}

// List returns every todo in natural order. The slice is never nil.
func (r *TodoMongoRepository) List(ctx context.Context) ([]model.Todo, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, r.handleError(err)
	}

	todos := []model.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, r.handleError(err)
	}

	return todos, nil
}

func (r *TodoMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	var todo model.Todo
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		return nil, r.handleError(err)
	}

	return &todo, nil
}

func (r *TodoMongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	var todo model.Todo
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		return nil, r.handleError(err)
	}

	return &todo, nil
}

func (r *TodoMongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update model.TodoUpdate) (*model.Todo, error) {
	set := bson.M{
		"completed":   update.Completed,
		"completedAt": update.CompletedAt,
	}
	if update.Text != nil {
		set["text"] = *update.Text
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo model.Todo
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&todo)
	if err != nil {
		return nil, r.handleError(err)
	}

	return &todo, nil
}

func (r *TodoMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return r.handleError(err)
	}
	return nil
}

func (r *TodoMongoRepository) InsertMany(ctx context.Context, todos []model.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	docs := make([]any, 0, len(todos))
	for i := range todos {
		if todos[i].ID.IsZero() {
			todos[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, todos[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return r.handleError(err)
	}
	return nil
}

func (r *TodoMongoRepository) handleError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return mongoerr.HandleError(database.TodosCollection, err)
}
