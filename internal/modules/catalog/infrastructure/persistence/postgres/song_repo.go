package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
)

type PgSongRepository struct {
	db *sqlx.DB
}

func NewSongRepository(db *sqlx.DB) *PgSongRepository {
	return &PgSongRepository{db: db}
}

func (r *PgSongRepository) Create(ctx context.Context, song *domain.Song) error {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	if song.CreatedAt.IsZero() {
		song.CreatedAt = time.Now()
	}

	query := `INSERT INTO songs (id, artist_id, album_id, title, duration, file_url, cover_url, genre, plays, created_at)
		VALUES (:id, :artist_id, :album_id, :title, :duration, :file_url, :cover_url, :genre, 0, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, song); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrBadReference
		}
		return err
	}
	song.Plays = 0
	return nil
}

func (r *PgSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	song := &domain.Song{}
	query := `
		SELECT s.*, a.artist_name, al.title AS album_title
		FROM songs s
		JOIN artists a ON s.artist_id = a.id
		LEFT JOIN albums al ON s.album_id = al.id
		WHERE s.id = $1`

	err := r.db.GetContext(ctx, song, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

func (r *PgSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	var results []struct {
		domain.Song
		TotalCount int `db:"total_count"`
	}

	query := `
		SELECT s.*, a.artist_name, al.title AS album_title, COUNT(*) OVER() AS total_count
		FROM songs s
		JOIN artists a ON s.artist_id = a.id
		LEFT JOIN albums al ON s.album_id = al.id
		WHERE 1=1`

	args := []interface{}{}
	argId := 1

	if filter.Genre != "" {
		query += fmt.Sprintf(" AND s.genre = $%d", argId)
		args = append(args, filter.Genre)
		argId++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (s.title ILIKE $%d OR a.artist_name ILIKE $%d)", argId, argId)
		args = append(args, "%"+filter.Search+"%")
		argId++
	}

	// Sort keys were validated against domain.SongSortColumns upstream.
	orderBy, ok := domain.SongSortColumns[filter.Sort]
	if !ok {
		orderBy = "s.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", orderBy, direction, argId, argId+1)
	args = append(args, filter.Limit, filter.Offset)

	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []domain.Song{}, 0, nil
	}

	total := results[0].TotalCount
	songs := make([]domain.Song, len(results))
	for i, res := range results {
		songs[i] = res.Song
	}
	return songs, total, nil
}

func (r *PgSongRepository) Update(ctx context.Context, id uuid.UUID, upd domain.SongUpdate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE songs SET title = $1, genre = $2, cover_url = $3, album_id = $4 WHERE id = $5`,
		upd.Title, upd.Genre, upd.CoverUrl, upd.AlbumID, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrBadReference
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Delete removes the song; analytics and history rows cascade with it.
func (r *PgSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

func (r *PgSongRepository) OwnerUserID(ctx context.Context, songID uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID
	query := `SELECT a.user_id FROM songs s JOIN artists a ON s.artist_id = a.id WHERE s.id = $1`
	err := r.db.GetContext(ctx, &userID, query, songID)
	if err == sql.ErrNoRows {
		return uuid.Nil, domain.ErrSongNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func (r *PgSongRepository) ArtistIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var artistID uuid.UUID
	err := r.db.GetContext(ctx, &artistID, `SELECT id FROM artists WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return uuid.Nil, domain.ErrNotAnArtist
	}
	if err != nil {
		return uuid.Nil, err
	}
	return artistID, nil
}

// IncrementPlays bumps the play counter and upserts today's analytics row.
// The upsert is a single conditional insert-or-increment so concurrent
// plays of the same song never lose updates.
func (r *PgSongRepository) IncrementPlays(ctx context.Context, songID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE songs SET plays = plays + 1 WHERE id = $1`, songID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSongNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO analytics (song_id, date, plays_count)
		VALUES ($1, CURRENT_DATE, 1)
		ON CONFLICT (song_id, date)
		DO UPDATE SET plays_count = analytics.plays_count + 1`, songID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
