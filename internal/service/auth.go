package service

import (
	"fmt"

	"github.com/deppfellow/todo-api/internal/lib/auth"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/server"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService issues credentials with the configured auth secret.
type AuthService struct {
	secretKey []byte
}

func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		secretKey: []byte(s.Config.Auth.SecretKey),
	}
}

// HashPassword returns the bcrypt hash stored in place of password.
func (a *AuthService) HashPassword(password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// GenerateAuthToken signs an "auth" access token for userID.
func (a *AuthService) GenerateAuthToken(userID primitive.ObjectID) (model.Token, error) {
	token, err := auth.GenerateToken(userID.Hex(), model.AccessAuth, a.secretKey)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to sign auth token: %w", err)
	}

	return model.Token{Access: model.AccessAuth, Token: token}, nil
}

// VerifyToken parses token and returns the user id and access kind it carries.
func (a *AuthService) VerifyToken(token string) (string, string, error) {
	claims, err := auth.ParseToken(token, a.secretKey)
	if err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Access, nil
}
