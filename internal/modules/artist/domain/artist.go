package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Artist is the creator profile attached to a user account.
type Artist struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	Bio        string    `json:"bio" db:"bio"`
	AvatarUrl  string    `json:"avatar_url" db:"avatar_url"`
	Verified   bool      `json:"verified" db:"verified"`
}

// ProfileUpdate carries the artist-editable profile fields.
type ProfileUpdate struct {
	ArtistName string `json:"artist_name"`
	Bio        string `json:"bio"`
	AvatarUrl  string `json:"avatar_url"`
}

// CatalogSong is one of the artist's songs in the self-service views.
type CatalogSong struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Genre     *string   `json:"genre,omitempty" db:"genre"`
	Duration  int       `json:"duration" db:"duration"`
	CoverUrl  string    `json:"cover_url" db:"cover_url"`
	Plays     int64     `json:"plays" db:"plays"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CatalogAlbum is one of the artist's albums with aggregates.
type CatalogAlbum struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	CoverUrl    string    `json:"cover_url" db:"cover_url"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	SongCount   int       `json:"song_count" db:"song_count"`
	TotalPlays  int64     `json:"total_plays" db:"total_plays"`
}

// DailyPlays is one day of aggregated plays across the artist's catalog.
type DailyPlays struct {
	Date  time.Time `json:"date" db:"date"`
	Plays int64     `json:"plays" db:"plays_count"`
}

// Analytics is the artist dashboard payload.
type Analytics struct {
	TotalPlays int64        `json:"total_plays"`
	SongCount  int          `json:"song_count"`
	Followers  int          `json:"followers"`
	Daily      []DailyPlays `json:"daily"`
}

// ArtistRepository defines the contract for artist self-service access.
type ArtistRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Artist, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error
	Songs(ctx context.Context, artistID uuid.UUID) ([]CatalogSong, error)
	Albums(ctx context.Context, artistID uuid.UUID) ([]CatalogAlbum, error)
	DailyPlays(ctx context.Context, artistID uuid.UUID, days int) ([]DailyPlays, error)
	Totals(ctx context.Context, artistID uuid.UUID) (totalPlays int64, songCount int, err error)
	FollowerCount(ctx context.Context, artistID uuid.UUID) (int, error)
}
