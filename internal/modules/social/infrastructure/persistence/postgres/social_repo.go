package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adityav25/tunestream/internal/modules/social/domain"
)

type PgSocialRepository struct {
	db *sqlx.DB
}

func NewPgSocialRepository(db *sqlx.DB) *PgSocialRepository {
	return &PgSocialRepository{db: db}
}

// AddLike inserts the (user, song) pair. The primary key makes a repeat
// like a conflict rather than a second row.
func (r *PgSocialRepository) AddLike(ctx context.Context, userID, songID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (user_id, song_id) VALUES ($1, $2)`,
		userID, songID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return domain.ErrAlreadyLiked
			case "23503":
				return domain.ErrSongNotFound
			}
		}
		return err
	}
	return nil
}

func (r *PgSocialRepository) RemoveLike(ctx context.Context, userID, songID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND song_id = $2`,
		userID, songID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (r *PgSocialRepository) ListLikes(ctx context.Context, userID uuid.UUID) ([]domain.LikedSong, error) {
	query := `
		SELECT s.id AS song_id, s.title, s.duration, s.file_url, s.cover_url,
		       s.genre, a.artist_name, l.created_at AS liked_at
		FROM likes l
		JOIN songs s ON s.id = l.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`

	songs := []domain.LikedSong{}
	if err := r.db.SelectContext(ctx, &songs, query, userID); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgSocialRepository) Follow(ctx context.Context, userID, artistID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO followers (user_id, artist_id) VALUES ($1, $2)
		ON CONFLICT (user_id, artist_id) DO NOTHING`,
		userID, artistID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrArtistNotFound
		}
		return err
	}
	return nil
}

func (r *PgSocialRepository) Unfollow(ctx context.Context, userID, artistID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM followers WHERE user_id = $1 AND artist_id = $2`,
		userID, artistID)
	return err
}

func (r *PgSocialRepository) IsFollowing(ctx context.Context, userID, artistID uuid.UUID) (bool, error) {
	var following bool
	err := r.db.GetContext(ctx, &following,
		`SELECT EXISTS (SELECT 1 FROM followers WHERE user_id = $1 AND artist_id = $2)`,
		userID, artistID)
	return following, err
}

func (r *PgSocialRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.FollowedArtist, error) {
	query := `
		SELECT a.id AS artist_id, a.artist_name, a.avatar_url, a.verified,
		       COUNT(s.id) AS song_count, f.followed_at
		FROM followers f
		JOIN artists a ON a.id = f.artist_id
		LEFT JOIN songs s ON s.artist_id = a.id
		WHERE f.user_id = $1
		GROUP BY a.id, f.followed_at
		ORDER BY f.followed_at DESC`

	artists := []domain.FollowedArtist{}
	if err := r.db.SelectContext(ctx, &artists, query, userID); err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *PgSocialRepository) ArtistExists(ctx context.Context, artistID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, artistID)
	return exists, err
}
