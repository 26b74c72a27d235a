package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Playlist is a user-owned, ordered collection of songs.
type Playlist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	IsPublic  bool      `json:"is_public" db:"is_public"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	SongCount int `json:"song_count" db:"song_count"`
}

// PlaylistSong is a track inside a playlist, ordered by Position.
type PlaylistSong struct {
	SongID     uuid.UUID `json:"song_id" db:"song_id"`
	Title      string    `json:"title" db:"title"`
	Duration   int       `json:"duration" db:"duration"`
	FileUrl    string    `json:"file_url" db:"file_url"`
	CoverUrl   string    `json:"cover_url" db:"cover_url"`
	Genre      *string   `json:"genre,omitempty" db:"genre"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	Position   int       `json:"position" db:"position"`
}

// PlaylistRepository defines the contract for playlist data access
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Playlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Playlist, error)
	GetSongs(ctx context.Context, playlistID uuid.UUID) ([]PlaylistSong, error)
	// AddSong appends the song at MAX(position)+1 for the playlist.
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) error
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
