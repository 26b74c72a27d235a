package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LikedSong is a song enriched with when the user liked it.
type LikedSong struct {
	SongID     uuid.UUID `json:"song_id" db:"song_id"`
	Title      string    `json:"title" db:"title"`
	Duration   int       `json:"duration" db:"duration"`
	FileUrl    string    `json:"file_url" db:"file_url"`
	CoverUrl   string    `json:"cover_url" db:"cover_url"`
	Genre      *string   `json:"genre,omitempty" db:"genre"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	LikedAt    time.Time `json:"liked_at" db:"liked_at"`
}

// FollowedArtist is an artist the user follows, with their catalog size.
type FollowedArtist struct {
	ArtistID   uuid.UUID `json:"artist_id" db:"artist_id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	AvatarUrl  string    `json:"avatar_url" db:"avatar_url"`
	Verified   bool      `json:"verified" db:"verified"`
	SongCount  int       `json:"song_count" db:"song_count"`
	FollowedAt time.Time `json:"followed_at" db:"followed_at"`
}

// SocialRepository defines the contract for likes and follows.
type SocialRepository interface {
	AddLike(ctx context.Context, userID, songID uuid.UUID) error
	RemoveLike(ctx context.Context, userID, songID uuid.UUID) error
	ListLikes(ctx context.Context, userID uuid.UUID) ([]LikedSong, error)

	// Follow is idempotent; following an already-followed artist is a no-op.
	Follow(ctx context.Context, userID, artistID uuid.UUID) error
	Unfollow(ctx context.Context, userID, artistID uuid.UUID) error
	IsFollowing(ctx context.Context, userID, artistID uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]FollowedArtist, error)
	ArtistExists(ctx context.Context, artistID uuid.UUID) (bool, error)
}
