package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Album groups songs by an artist. SongCount and TotalPlays are aggregates
// computed by list queries.
type Album struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ArtistID    uuid.UUID `json:"artist_id" db:"artist_id"`
	Title       string    `json:"title" db:"title"`
	CoverUrl    string    `json:"cover_url" db:"cover_url"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`

	ArtistName string `json:"artist_name,omitempty" db:"artist_name"`
	SongCount  int    `json:"song_count" db:"song_count"`
	TotalPlays int64  `json:"total_plays" db:"total_plays"`
}

// AlbumUpdate carries the mutable album fields.
type AlbumUpdate struct {
	Title       string    `json:"title"`
	CoverUrl    string    `json:"cover_url"`
	ReleaseDate time.Time `json:"release_date"`
}

// AlbumFilter contains list-query parameters for albums.
type AlbumFilter struct {
	Sort   string
	Order  string
	Limit  int
	Offset int
}

// AlbumSortColumns is the sort-key allow-list for album listing.
var AlbumSortColumns = map[string]string{
	"release_date": "a.release_date",
	"title":        "a.title",
}

// AlbumRepository defines the contract for album data access
type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*Album, error)
	GetSongs(ctx context.Context, albumID uuid.UUID) ([]Song, error)
	List(ctx context.Context, filter AlbumFilter) ([]Album, int, error)
	Update(ctx context.Context, id uuid.UUID, upd AlbumUpdate) error
	// Delete nulls album_id on the album's songs and removes the album in
	// one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	OwnerUserID(ctx context.Context, albumID uuid.UUID) (uuid.UUID, error)
}
