package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/discovery/domain"
)

type PgDiscoveryRepository struct {
	db *sqlx.DB
}

func NewPgDiscoveryRepository(db *sqlx.DB) *PgDiscoveryRepository {
	return &PgDiscoveryRepository{db: db}
}

const songColumns = `
	s.id, s.title, s.duration, s.file_url, s.cover_url, s.genre, s.plays,
	a.artist_name, s.created_at`

// ForUser picks the user's three most-playlisted genres and recommends
// popular songs in them, excluding anything already playlisted.
func (r *PgDiscoveryRepository) ForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendedSong, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.genre IN (
			SELECT ls.genre
			FROM playlist_songs ps
			JOIN playlists p ON p.id = ps.playlist_id
			JOIN songs ls ON ls.id = ps.song_id
			WHERE p.user_id = $1 AND ls.genre IS NOT NULL
			GROUP BY ls.genre
			ORDER BY COUNT(*) DESC
			LIMIT 3
		)
		AND s.id NOT IN (
			SELECT ps.song_id
			FROM playlist_songs ps
			JOIN playlists p ON p.id = ps.playlist_id
			WHERE p.user_id = $1
		)
		ORDER BY s.plays DESC
		LIMIT $2`

	songs := []domain.RecommendedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, userID, limit); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgDiscoveryRepository) GlobalTop(ctx context.Context, limit int) ([]domain.RecommendedSong, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.plays DESC
		LIMIT $1`

	songs := []domain.RecommendedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, limit); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgDiscoveryRepository) Trending(ctx context.Context, days, limit int) ([]domain.RecommendedSong, error) {
	query := `
		SELECT ` + songColumns + `,
		       SUM(an.plays_count) AS period_plays
		FROM analytics an
		JOIN songs s ON s.id = an.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE an.date >= CURRENT_DATE - $1::int
		GROUP BY s.id, a.artist_name
		ORDER BY period_plays DESC
		LIMIT $2`

	songs := []domain.RecommendedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, days, limit); err != nil {
		return nil, err
	}
	return songs, nil
}

// Similar ranks candidates sharing the reference song's artist or genre.
// Same artist counts twice as much as same genre.
func (r *PgDiscoveryRepository) Similar(ctx context.Context, songID uuid.UUID, limit int) ([]domain.RecommendedSong, error) {
	var ref struct {
		ArtistID uuid.UUID `db:"artist_id"`
		Genre    *string   `db:"genre"`
	}
	err := r.db.GetContext(ctx, &ref,
		`SELECT artist_id, genre FROM songs WHERE id = $1`, songID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}

	query := `
		SELECT ` + songColumns + `,
		       (CASE WHEN s.artist_id = $2 THEN 2 ELSE 0 END +
		        CASE WHEN $3::text IS NOT NULL AND s.genre = $3 THEN 1 ELSE 0 END) AS score
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.id <> $1
		  AND (s.artist_id = $2 OR ($3::text IS NOT NULL AND s.genre = $3))
		ORDER BY score DESC, s.plays DESC
		LIMIT $4`

	songs := []domain.RecommendedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, songID, ref.ArtistID, ref.Genre, limit); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgDiscoveryRepository) NewReleases(ctx context.Context, days, limit int) ([]domain.RecommendedSong, error) {
	query := `
		SELECT ` + songColumns + `
		FROM songs s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.created_at >= NOW() - ($1 || ' days')::interval
		ORDER BY s.created_at DESC
		LIMIT $2`

	songs := []domain.RecommendedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, days, limit); err != nil {
		return nil, err
	}
	return songs, nil
}
