package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileExport is the account portion of a user export.
type ProfileExport struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PlaylistExport is one playlist with its ordered tracks.
type PlaylistExport struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	IsPublic  bool            `json:"is_public" db:"is_public"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	Songs     []TrackExport   `json:"songs"`
}

// TrackExport is a song reference inside an export.
type TrackExport struct {
	SongID     uuid.UUID `json:"song_id" db:"song_id"`
	Title      string    `json:"title" db:"title"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	Genre      *string   `json:"genre,omitempty" db:"genre"`
	Duration   int       `json:"duration" db:"duration"`
	FileUrl    string    `json:"file_url" db:"file_url"`
	Position   int       `json:"position,omitempty" db:"position"`
}

// HistoryExport is one listening-history row in a user export.
type HistoryExport struct {
	SongID         uuid.UUID `json:"song_id" db:"song_id"`
	Title          string    `json:"title" db:"title"`
	ArtistName     string    `json:"artist_name" db:"artist_name"`
	PlayedAt       time.Time `json:"played_at" db:"played_at"`
	DurationPlayed int       `json:"duration_played" db:"duration_played"`
	Completed      bool      `json:"completed" db:"completed"`
}

// FollowExport is one followed artist in a user export.
type FollowExport struct {
	ArtistID   uuid.UUID `json:"artist_id" db:"artist_id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	FollowedAt time.Time `json:"followed_at" db:"followed_at"`
}

// UserExport is the full GDPR-style data export for an account.
type UserExport struct {
	ExportedAt      time.Time        `json:"exported_at"`
	Profile         ProfileExport    `json:"profile"`
	Playlists       []PlaylistExport `json:"playlists"`
	LikedSongs      []TrackExport    `json:"liked_songs"`
	History         []HistoryExport  `json:"listening_history"`
	FollowedArtists []FollowExport   `json:"followed_artists"`
}

// ArtistProfileExport is the artist portion of an artist export.
type ArtistProfileExport struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	Bio        string    `json:"bio" db:"bio"`
	Verified   bool      `json:"verified" db:"verified"`
}

// SongExport is one catalog song in an artist export.
type SongExport struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Genre     *string   `json:"genre,omitempty" db:"genre"`
	Duration  int       `json:"duration" db:"duration"`
	Plays     int64     `json:"plays" db:"plays"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AlbumExport is one album in an artist export.
type AlbumExport struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	SongCount   int       `json:"song_count" db:"song_count"`
}

// DailyPlaysExport is one analytics day in an artist export.
type DailyPlaysExport struct {
	Date  time.Time `json:"date" db:"date"`
	Plays int64     `json:"plays" db:"plays_count"`
}

// ArtistExport is the full data export for an artist account.
type ArtistExport struct {
	ExportedAt time.Time           `json:"exported_at"`
	Profile    ArtistProfileExport `json:"profile"`
	Songs      []SongExport        `json:"songs"`
	Albums     []AlbumExport       `json:"albums"`
	Analytics  []DailyPlaysExport  `json:"analytics"`
}

// M3UPlaylist is the data needed to render an M3U file.
type M3UPlaylist struct {
	OwnerID uuid.UUID
	Name    string
	Songs   []TrackExport
}

// SongStat is one row of the per-song stats CSV.
type SongStat struct {
	Title        string  `db:"title"`
	ArtistName   string  `db:"artist_name"`
	Genre        *string `db:"genre"`
	PlayCount    int     `db:"play_count"`
	TotalMinutes float64 `db:"total_minutes"`
}

// ExportRepository defines the aggregate reads behind data exports.
type ExportRepository interface {
	UserExport(ctx context.Context, userID uuid.UUID) (*UserExport, error)
	ArtistExport(ctx context.Context, userID uuid.UUID) (*ArtistExport, error)
	PlaylistForM3U(ctx context.Context, playlistID uuid.UUID) (*M3UPlaylist, error)
	SongStats(ctx context.Context, userID uuid.UUID) ([]SongStat, error)
}
