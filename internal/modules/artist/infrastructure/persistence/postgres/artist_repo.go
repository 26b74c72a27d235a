package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/artist/domain"
)

type PgArtistRepository struct {
	db *sqlx.DB
}

func NewPgArtistRepository(db *sqlx.DB) *PgArtistRepository {
	return &PgArtistRepository{db: db}
}

func (r *PgArtistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Artist, error) {
	var artist domain.Artist
	err := r.db.GetContext(ctx, &artist, `
		SELECT id, user_id, artist_name, bio, avatar_url, verified
		FROM artists WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *PgArtistRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE artists
		SET artist_name = $1, bio = $2, avatar_url = $3
		WHERE user_id = $4`,
		upd.ArtistName, upd.Bio, upd.AvatarUrl, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *PgArtistRepository) Songs(ctx context.Context, artistID uuid.UUID) ([]domain.CatalogSong, error) {
	songs := []domain.CatalogSong{}
	err := r.db.SelectContext(ctx, &songs, `
		SELECT id, title, genre, duration, cover_url, plays, created_at
		FROM songs WHERE artist_id = $1
		ORDER BY created_at DESC`, artistID)
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgArtistRepository) Albums(ctx context.Context, artistID uuid.UUID) ([]domain.CatalogAlbum, error) {
	albums := []domain.CatalogAlbum{}
	err := r.db.SelectContext(ctx, &albums, `
		SELECT al.id, al.title, al.cover_url, al.release_date,
		       COUNT(s.id) AS song_count,
		       COALESCE(SUM(s.plays), 0) AS total_plays
		FROM albums al
		LEFT JOIN songs s ON s.album_id = al.id
		WHERE al.artist_id = $1
		GROUP BY al.id
		ORDER BY al.release_date DESC`, artistID)
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *PgArtistRepository) DailyPlays(ctx context.Context, artistID uuid.UUID, days int) ([]domain.DailyPlays, error) {
	daily := []domain.DailyPlays{}
	err := r.db.SelectContext(ctx, &daily, `
		SELECT an.date, SUM(an.plays_count) AS plays_count
		FROM analytics an
		JOIN songs s ON s.id = an.song_id
		WHERE s.artist_id = $1
		  AND an.date >= CURRENT_DATE - $2::int
		GROUP BY an.date
		ORDER BY an.date`, artistID, days)
	if err != nil {
		return nil, err
	}
	return daily, nil
}

func (r *PgArtistRepository) Totals(ctx context.Context, artistID uuid.UUID) (int64, int, error) {
	var totals struct {
		TotalPlays int64 `db:"total_plays"`
		SongCount  int   `db:"song_count"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COALESCE(SUM(plays), 0) AS total_plays, COUNT(*) AS song_count
		FROM songs WHERE artist_id = $1`, artistID)
	if err != nil {
		return 0, 0, err
	}
	return totals.TotalPlays, totals.SongCount, nil
}

func (r *PgArtistRepository) FollowerCount(ctx context.Context, artistID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM followers WHERE artist_id = $1`, artistID)
	return count, err
}
