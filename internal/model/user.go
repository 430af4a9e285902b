package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AccessAuth is the access kind of login tokens.
const AccessAuth = "auth"

// Token is an authentication token issued to a user.
type Token struct {
	Access string `bson:"access" json:"access"`
	Token  string `bson:"token" json:"token"`
}

// User is an account. Only the id and email are ever serialized to
// clients; the password hash and tokens stay server-side.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id" db:"id"`
	Email    string             `bson:"email" json:"email" db:"email"`
	Password string             `bson:"password" json:"-" db:"password"`
	Tokens   []Token            `bson:"tokens" json:"-" db:"tokens"`
}
