package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user: not found")
	ErrDuplicateEmail = errors.New("user: email already registered")
)

// User is the durable identity record. PasswordHash is nil for users
// created through an OAuth provider who never set a password.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"date"`
}

// NewUser holds the fields required to create a user record.
type NewUser struct {
	Email        string
	Name         string
	PasswordHash *string
}

// Store persists identity records. Email is unique across the store;
// ids are assigned at creation and never reused.
type Store interface {
	Create(ctx context.Context, nu NewUser) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
