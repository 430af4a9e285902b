package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is a single todo item.
//
// CompletedAt holds epoch milliseconds and is non-nil exactly when
// Completed is true.
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" db:"id"`
	Text        string             `bson:"text" json:"text" db:"text"`
	Completed   bool               `bson:"completed" json:"completed" db:"completed"`
	CompletedAt *int64             `bson:"completedAt" json:"completedAt" db:"completed_at"`
}

// TodoUpdate is the whitelisted partial update applied to a todo.
// Text is nil when the caller did not send it.
type TodoUpdate struct {
	Text        *string
	Completed   bool
	CompletedAt *int64
}
