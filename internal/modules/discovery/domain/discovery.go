package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecommendedSong is a song projection returned by discovery queries.
// Score and PeriodPlays are only populated by the queries that compute
// them.
type RecommendedSong struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Duration   int       `json:"duration" db:"duration"`
	FileUrl    string    `json:"file_url" db:"file_url"`
	CoverUrl   string    `json:"cover_url" db:"cover_url"`
	Genre      *string   `json:"genre,omitempty" db:"genre"`
	Plays      int64     `json:"plays" db:"plays"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Score       int   `json:"score,omitempty" db:"score"`
	PeriodPlays int64 `json:"period_plays,omitempty" db:"period_plays"`
}

// DiscoveryRepository defines the contract for recommendation queries.
type DiscoveryRepository interface {
	// ForUser recommends songs in the user's top playlisted genres,
	// excluding songs already in their playlists.
	ForUser(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedSong, error)
	// GlobalTop is the fallback when the user has no playlisted genres.
	GlobalTop(ctx context.Context, limit int) ([]RecommendedSong, error)
	// Trending ranks songs by analytics plays over the trailing window.
	Trending(ctx context.Context, days, limit int) ([]RecommendedSong, error)
	// Similar scores candidates 2 for same artist, 1 for same genre.
	Similar(ctx context.Context, songID uuid.UUID, limit int) ([]RecommendedSong, error)
	NewReleases(ctx context.Context, days, limit int) ([]RecommendedSong, error)
}
