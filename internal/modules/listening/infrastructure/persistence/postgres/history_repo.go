package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adityav25/tunestream/internal/modules/listening/domain"
)

type PgHistoryRepository struct {
	db *sqlx.DB
}

func NewPgHistoryRepository(db *sqlx.DB) *PgHistoryRepository {
	return &PgHistoryRepository{db: db}
}

func (r *PgHistoryRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO listening_history (user_id, song_id, duration_played, completed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, played_at`
	err := r.db.QueryRowxContext(ctx, query,
		entry.UserID, entry.SongID, entry.DurationPlayed, entry.Completed,
	).Scan(&entry.ID, &entry.PlayedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrSongNotFound
		}
		return err
	}
	return nil
}

func (r *PgHistoryRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.HistoryEntry, int, error) {
	query := `
		SELECT h.id, h.user_id, h.song_id, h.played_at, h.duration_played,
		       h.completed, s.title, a.artist_name, s.cover_url,
		       COUNT(*) OVER() AS total_count
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE h.user_id = $1
		ORDER BY h.played_at DESC
		LIMIT $2 OFFSET $3`

	var rows []struct {
		domain.HistoryEntry
		TotalCount int `db:"total_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, err
	}

	entries := make([]domain.HistoryEntry, len(rows))
	total := 0
	for i, row := range rows {
		entries[i] = row.HistoryEntry
		total = row.TotalCount
	}
	return entries, total, nil
}

func (r *PgHistoryRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT * FROM (
			SELECT DISTINCT ON (h.song_id)
			       h.id, h.user_id, h.song_id, h.played_at, h.duration_played,
			       h.completed, s.title, a.artist_name, s.cover_url
			FROM listening_history h
			JOIN songs s ON s.id = h.song_id
			JOIN artists a ON a.id = s.artist_id
			WHERE h.user_id = $1
			ORDER BY h.song_id, h.played_at DESC
		) recent
		ORDER BY played_at DESC
		LIMIT $2`

	entries := []domain.HistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PgHistoryRepository) TopSongs(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopSong, error) {
	query := `
		SELECT s.id AS song_id, s.title, a.artist_name, s.cover_url,
		       COUNT(*) AS play_count
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE h.user_id = $1
		  AND h.played_at >= NOW() - ($2 || ' days')::interval
		GROUP BY s.id, a.artist_name
		ORDER BY play_count DESC
		LIMIT $3`

	songs := []domain.TopSong{}
	if err := r.db.SelectContext(ctx, &songs, query, userID, days, limit); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgHistoryRepository) TopArtists(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopArtist, error) {
	query := `
		SELECT a.id AS artist_id, a.artist_name, a.avatar_url,
		       COUNT(*) AS play_count
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE h.user_id = $1
		  AND h.played_at >= NOW() - ($2 || ' days')::interval
		GROUP BY a.id
		ORDER BY play_count DESC
		LIMIT $3`

	artists := []domain.TopArtist{}
	if err := r.db.SelectContext(ctx, &artists, query, userID, days, limit); err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *PgHistoryRepository) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.Stats, error) {
	query := `
		SELECT COUNT(*) AS total_plays,
		       COALESCE(SUM(h.duration_played), 0) / 60.0 AS total_minutes,
		       COUNT(DISTINCT h.song_id) AS unique_songs,
		       COUNT(DISTINCT s.artist_id) AS unique_artists,
		       COUNT(*) FILTER (WHERE h.completed) AS completed_plays
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		WHERE h.user_id = $1
		  AND h.played_at >= NOW() - ($2 || ' days')::interval`

	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, query, userID, days); err != nil {
		return nil, err
	}

	genreQuery := `
		SELECT s.genre
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		WHERE h.user_id = $1
		  AND h.played_at >= NOW() - ($2 || ' days')::interval
		  AND s.genre IS NOT NULL
		GROUP BY s.genre
		ORDER BY COUNT(*) DESC
		LIMIT 1`

	var topGenre string
	err := r.db.GetContext(ctx, &topGenre, genreQuery, userID, days)
	switch {
	case err == nil:
		stats.TopGenre = &topGenre
	case errors.Is(err, sql.ErrNoRows):
		// No plays with a genre in the window.
	default:
		return nil, err
	}
	return &stats, nil
}
