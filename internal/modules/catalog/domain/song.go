package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Song is a playable track. ArtistName and AlbumTitle are joined in by the
// repository for read paths.
type Song struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ArtistID  uuid.UUID  `json:"artist_id" db:"artist_id"`
	AlbumID   *uuid.UUID `json:"album_id,omitempty" db:"album_id"`
	Title     string     `json:"title" db:"title"`
	Duration  int        `json:"duration" db:"duration"`
	FileUrl   string     `json:"file_url" db:"file_url"`
	CoverUrl  string     `json:"cover_url" db:"cover_url"`
	Genre     *string    `json:"genre,omitempty" db:"genre"`
	Plays     int64      `json:"plays" db:"plays"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`

	ArtistName string  `json:"artist_name,omitempty" db:"artist_name"`
	AlbumTitle *string `json:"album_title,omitempty" db:"album_title"`
}

// SongUpdate carries the mutable song fields.
type SongUpdate struct {
	Title    string     `json:"title"`
	Genre    *string    `json:"genre"`
	CoverUrl string     `json:"cover_url"`
	AlbumID  *uuid.UUID `json:"album_id"`
}

// SongFilter contains list-query parameters. Sort and Order must already
// be validated against the allow-list before reaching the repository.
type SongFilter struct {
	Genre  string
	Search string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

// SongSortColumns maps client sort keys to safe column identifiers. Keys
// outside this map are rejected with a validation error, never interpolated.
var SongSortColumns = map[string]string{
	"created_at":  "s.created_at",
	"title":       "s.title",
	"plays":       "s.plays",
	"artist_name": "a.artist_name",
}

// SongRepository defines the contract for song data access
type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id uuid.UUID) (*Song, error)
	List(ctx context.Context, filter SongFilter) ([]Song, int, error)
	Update(ctx context.Context, id uuid.UUID, upd SongUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerUserID resolves the user account owning the song's artist.
	OwnerUserID(ctx context.Context, songID uuid.UUID) (uuid.UUID, error)
	// ArtistIDForUser resolves a user's artist profile id.
	ArtistIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	// IncrementPlays bumps the song's play counter and upserts today's
	// analytics row in one transaction.
	IncrementPlays(ctx context.Context, songID uuid.UUID) error
}
