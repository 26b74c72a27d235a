package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountSummary is one row of the admin user listing.
type AccountSummary struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArtistSummary is one row of the admin artist listing, joined with the
// owning account.
type ArtistSummary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	Verified   bool      `json:"verified" db:"verified"`
	Email      string    `json:"email" db:"email"`
	Username   string    `json:"username" db:"username"`
	SongCount  int       `json:"song_count" db:"song_count"`
}

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	TotalUsers   int   `json:"total_users" db:"total_users"`
	TotalArtists int   `json:"total_artists" db:"total_artists"`
	TotalSongs   int   `json:"total_songs" db:"total_songs"`
	TotalAlbums  int   `json:"total_albums" db:"total_albums"`
	TotalPlays   int64 `json:"total_plays" db:"total_plays"`
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrArtistNotFound = errors.New("artist not found")
)

// AdminRepository defines the contract for platform administration.
type AdminRepository interface {
	ListUsers(ctx context.Context, limit, offset int) ([]AccountSummary, int, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListArtists(ctx context.Context, limit, offset int) ([]ArtistSummary, int, error)
	SetArtistVerified(ctx context.Context, id uuid.UUID, verified bool) error
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}
