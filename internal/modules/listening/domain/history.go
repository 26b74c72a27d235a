package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one playback event.
type HistoryEntry struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	SongID         uuid.UUID `json:"song_id" db:"song_id"`
	PlayedAt       time.Time `json:"played_at" db:"played_at"`
	DurationPlayed int       `json:"duration_played" db:"duration_played"`
	Completed      bool      `json:"completed" db:"completed"`

	Title      string `json:"title,omitempty" db:"title"`
	ArtistName string `json:"artist_name,omitempty" db:"artist_name"`
	CoverUrl   string `json:"cover_url,omitempty" db:"cover_url"`
}

// TopSong is a song ranked by the user's play count in a period.
type TopSong struct {
	SongID     uuid.UUID `json:"song_id" db:"song_id"`
	Title      string    `json:"title" db:"title"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	CoverUrl   string    `json:"cover_url" db:"cover_url"`
	PlayCount  int       `json:"play_count" db:"play_count"`
}

// TopArtist is an artist ranked by the user's play count in a period.
type TopArtist struct {
	ArtistID   uuid.UUID `json:"artist_id" db:"artist_id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	AvatarUrl  string    `json:"avatar_url" db:"avatar_url"`
	PlayCount  int       `json:"play_count" db:"play_count"`
}

// Stats summarises a user's listening over a period. TopGenre is nil
// when no play in the window has a genre.
type Stats struct {
	TotalPlays    int     `json:"total_plays" db:"total_plays"`
	TotalMinutes  float64 `json:"total_minutes" db:"total_minutes"`
	UniqueSongs   int     `json:"unique_songs" db:"unique_songs"`
	UniqueArtists int     `json:"unique_artists" db:"unique_artists"`
	Completed     int     `json:"completed_plays" db:"completed_plays"`
	TopGenre      *string `json:"top_genre" db:"top_genre"`
	PeriodDays    int     `json:"period_days" db:"period_days"`
}

// HistoryRepository defines the contract for listening-history access.
type HistoryRepository interface {
	Add(ctx context.Context, entry *HistoryEntry) error
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]HistoryEntry, int, error)
	// Recent returns the latest entry per distinct song.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error)
	TopSongs(ctx context.Context, userID uuid.UUID, days, limit int) ([]TopSong, error)
	TopArtists(ctx context.Context, userID uuid.UUID, days, limit int) ([]TopArtist, error)
	Stats(ctx context.Context, userID uuid.UUID, days int) (*Stats, error)
}
