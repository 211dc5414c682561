package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is an account allowed to administer paid vacancies.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	IsAdmin      bool
}

var (
	ErrNotFound           = errors.New("admin not found")
	ErrUserAlreadyExists  = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository stores admin accounts. Emails are compared lower-cased.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// TokenGenerator issues session tokens (JWT in production).
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
