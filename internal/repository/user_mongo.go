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
)

// UserMongoRepository keeps users in the "users" collection.
type UserMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{coll: db.Collection(database.UsersCollection)}
}

func (r *UserMongoRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Tokens == nil {
		user.Tokens = []model.Token{}
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return nil, r.handleError(err)
	}

	return user, nil
}

func (r *UserMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, r.handleError(err)
	}

	return &user, nil
}

func (r *UserMongoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return r.handleError(err)
	}
	return nil
}

func (r *UserMongoRepository) handleError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return mongoerr.HandleError(database.UsersCollection, err)
}
