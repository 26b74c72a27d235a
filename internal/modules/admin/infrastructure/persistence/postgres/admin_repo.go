package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/admin/domain"
)

type PgAdminRepository struct {
	db *sqlx.DB
}

func NewPgAdminRepository(db *sqlx.DB) *PgAdminRepository {
	return &PgAdminRepository{db: db}
}

func (r *PgAdminRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.AccountSummary, int, error) {
	query := `
		SELECT id, email, username, role, created_at,
		       COUNT(*) OVER() AS total_count
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var rows []struct {
		domain.AccountSummary
		TotalCount int `db:"total_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, err
	}

	users := make([]domain.AccountSummary, len(rows))
	total := 0
	for i, row := range rows {
		users[i] = row.AccountSummary
		total = row.TotalCount
	}
	return users, total, nil
}

// DeleteUser removes the account; the schema cascades the artist profile,
// songs, playlists, likes, follows and history.
func (r *PgAdminRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PgAdminRepository) ListArtists(ctx context.Context, limit, offset int) ([]domain.ArtistSummary, int, error) {
	query := `
		SELECT a.id, a.artist_name, a.verified, u.email, u.username,
		       COUNT(s.id) AS song_count,
		       COUNT(*) OVER() AS total_count
		FROM artists a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN songs s ON s.artist_id = a.id
		GROUP BY a.id, u.email, u.username
		ORDER BY a.artist_name
		LIMIT $1 OFFSET $2`

	var rows []struct {
		domain.ArtistSummary
		TotalCount int `db:"total_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, err
	}

	artists := make([]domain.ArtistSummary, len(rows))
	total := 0
	for i, row := range rows {
		artists[i] = row.ArtistSummary
		total = row.TotalCount
	}
	return artists, total, nil
}

func (r *PgAdminRepository) SetArtistVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE artists SET verified = $1 WHERE id = $2`, verified, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *PgAdminRepository) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM artists) AS total_artists,
			(SELECT COUNT(*) FROM songs) AS total_songs,
			(SELECT COUNT(*) FROM albums) AS total_albums,
			(SELECT COALESCE(SUM(plays), 0) FROM songs) AS total_plays`

	var stats domain.PlatformStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
