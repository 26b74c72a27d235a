package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleArtist UserRole = "artist"
	RoleAdmin  UserRole = "admin"
)

// User is an account on the platform. Accounts with RoleArtist own exactly
// one artist profile row, created together with the user.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Username     string    `json:"username" db:"username"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	// Create inserts the user and, for artist-role users, the artist
	// profile row in the same transaction.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
