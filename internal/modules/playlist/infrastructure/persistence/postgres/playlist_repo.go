package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adityav25/tunestream/internal/modules/playlist/domain"
)

type PgPlaylistRepository struct {
	db *sqlx.DB
}

func NewPgPlaylistRepository(db *sqlx.DB) *PgPlaylistRepository {
	return &PgPlaylistRepository{db: db}
}

func (r *PgPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (user_id, name, is_public)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query,
		playlist.UserID, playlist.Name, playlist.IsPublic,
	).Scan(&playlist.ID, &playlist.CreatedAt)
}

func (r *PgPlaylistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.is_public, p.created_at,
		       COUNT(ps.song_id) AS song_count
		FROM playlists p
		LEFT JOIN playlist_songs ps ON ps.playlist_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC`

	playlists := []domain.Playlist{}
	if err := r.db.SelectContext(ctx, &playlists, query, userID); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PgPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	query := `
		SELECT p.id, p.user_id, p.name, p.is_public, p.created_at,
		       COUNT(ps.song_id) AS song_count
		FROM playlists p
		LEFT JOIN playlist_songs ps ON ps.playlist_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`

	if err := r.db.GetContext(ctx, &playlist, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *PgPlaylistRepository) GetSongs(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error) {
	query := `
		SELECT s.id AS song_id, s.title, s.duration, s.file_url, s.cover_url,
		       s.genre, a.artist_name, ps.position
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE ps.playlist_id = $1
		ORDER BY ps.position ASC`

	songs := []domain.PlaylistSong{}
	if err := r.db.SelectContext(ctx, &songs, query, playlistID); err != nil {
		return nil, err
	}
	return songs, nil
}

// AddSong appends at the end of the playlist. The MAX(position)+1 lookup
// and the insert run in one statement so concurrent appends cannot race
// past each other into duplicate positions within a request.
func (r *PgPlaylistRepository) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	query := `
		INSERT INTO playlist_songs (playlist_id, song_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1
		FROM playlist_songs
		WHERE playlist_id = $1`

	_, err := r.db.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return domain.ErrSongAlreadyAdded
			case "23503":
				return domain.ErrBadReference
			}
		}
		return err
	}
	return nil
}

func (r *PgPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`,
		playlistID, songID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrSongNotInPlaylist
	}
	return nil
}

func (r *PgPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
