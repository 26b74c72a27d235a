package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
)

type PgAlbumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) *PgAlbumRepository {
	return &PgAlbumRepository{db: db}
}

func (r *PgAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	if album.ReleaseDate.IsZero() {
		album.ReleaseDate = time.Now()
	}

	query := `INSERT INTO albums (id, artist_id, title, cover_url, release_date)
		VALUES (:id, :artist_id, :title, :cover_url, :release_date)`
	_, err := r.db.NamedExecContext(ctx, query, album)
	return err
}

func (r *PgAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	album := &domain.Album{}
	query := `
		SELECT a.id, a.artist_id, a.title, a.cover_url, a.release_date, ar.artist_name,
			COUNT(DISTINCT s.id) AS song_count,
			COALESCE(SUM(s.plays), 0) AS total_plays
		FROM albums a
		JOIN artists ar ON a.artist_id = ar.id
		LEFT JOIN songs s ON a.id = s.album_id
		WHERE a.id = $1
		GROUP BY a.id, ar.artist_name`

	err := r.db.GetContext(ctx, album, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return album, nil
}

func (r *PgAlbumRepository) GetSongs(ctx context.Context, albumID uuid.UUID) ([]domain.Song, error) {
	songs := []domain.Song{}
	query := `
		SELECT s.*, ar.artist_name
		FROM songs s
		JOIN artists ar ON s.artist_id = ar.id
		WHERE s.album_id = $1
		ORDER BY s.created_at`
	err := r.db.SelectContext(ctx, &songs, query, albumID)
	return songs, err
}

func (r *PgAlbumRepository) List(ctx context.Context, filter domain.AlbumFilter) ([]domain.Album, int, error) {
	var results []struct {
		domain.Album
		TotalCount int `db:"total_count"`
	}

	orderBy, ok := domain.AlbumSortColumns[filter.Sort]
	if !ok {
		orderBy = "a.release_date"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.artist_id, a.title, a.cover_url, a.release_date, ar.artist_name,
			COUNT(DISTINCT s.id) AS song_count,
			COALESCE(SUM(s.plays), 0) AS total_plays,
			COUNT(*) OVER() AS total_count
		FROM albums a
		JOIN artists ar ON a.artist_id = ar.id
		LEFT JOIN songs s ON a.id = s.album_id
		GROUP BY a.id, ar.artist_name
		ORDER BY %s %s
		LIMIT $1 OFFSET $2`, orderBy, direction)

	if err := r.db.SelectContext(ctx, &results, query, filter.Limit, filter.Offset); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []domain.Album{}, 0, nil
	}

	total := results[0].TotalCount
	albums := make([]domain.Album, len(results))
	for i, res := range results {
		albums[i] = res.Album
	}
	return albums, total, nil
}

func (r *PgAlbumRepository) Update(ctx context.Context, id uuid.UUID, upd domain.AlbumUpdate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE albums SET title = $1, cover_url = $2, release_date = $3 WHERE id = $4`,
		upd.Title, upd.CoverUrl, upd.ReleaseDate, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// Delete detaches the album's songs and removes the album in one
// transaction. Songs survive with album_id = NULL.
func (r *PgAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE songs SET album_id = NULL WHERE album_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAlbumNotFound
	}

	return tx.Commit()
}

func (r *PgAlbumRepository) OwnerUserID(ctx context.Context, albumID uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID
	query := `SELECT a.user_id FROM albums al JOIN artists a ON al.artist_id = a.id WHERE al.id = $1`
	err := r.db.GetContext(ctx, &userID, query, albumID)
	if err == sql.ErrNoRows {
		return uuid.Nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
