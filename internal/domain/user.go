package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
// PasswordHash never leaves the process; handlers project users through a
// public DTO that omits it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate describes a partial user update. Nil fields are left
// unchanged. PasswordHash, when set, must already be hashed.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence operations for users.
// IDs and timestamps are generated by the repository, not the caller.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update applies the non-nil fields of upd. It is a no-op (no write,
	// no updated_at bump) when nothing actually changes.
	Update(ctx context.Context, id string, upd UserUpdate) (*User, error)
	Delete(ctx context.Context, id string) error
	// ListAll returns all users, newest first.
	ListAll(ctx context.Context) ([]User, error)
}
