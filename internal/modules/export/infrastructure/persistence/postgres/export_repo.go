package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/export/domain"
)

type PgExportRepository struct {
	db *sqlx.DB
}

func NewPgExportRepository(db *sqlx.DB) *PgExportRepository {
	return &PgExportRepository{db: db}
}

func (r *PgExportRepository) UserExport(ctx context.Context, userID uuid.UUID) (*domain.UserExport, error) {
	export := &domain.UserExport{ExportedAt: time.Now().UTC()}

	err := r.db.GetContext(ctx, &export.Profile,
		`SELECT id, email, username, role, created_at FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	export.Playlists = []domain.PlaylistExport{}
	if err := r.db.SelectContext(ctx, &export.Playlists, `
		SELECT id, name, is_public, created_at
		FROM playlists WHERE user_id = $1
		ORDER BY created_at`, userID); err != nil {
		return nil, err
	}
	for i := range export.Playlists {
		songs := []domain.TrackExport{}
		if err := r.db.SelectContext(ctx, &songs, `
			SELECT s.id AS song_id, s.title, a.artist_name, s.genre,
			       s.duration, s.file_url, ps.position
			FROM playlist_songs ps
			JOIN songs s ON s.id = ps.song_id
			JOIN artists a ON a.id = s.artist_id
			WHERE ps.playlist_id = $1
			ORDER BY ps.position`, export.Playlists[i].ID); err != nil {
			return nil, err
		}
		export.Playlists[i].Songs = songs
	}

	export.LikedSongs = []domain.TrackExport{}
	if err := r.db.SelectContext(ctx, &export.LikedSongs, `
		SELECT s.id AS song_id, s.title, a.artist_name, s.genre, s.duration,
		       s.file_url
		FROM likes l
		JOIN songs s ON s.id = l.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`, userID); err != nil {
		return nil, err
	}

	export.History = []domain.HistoryExport{}
	if err := r.db.SelectContext(ctx, &export.History, `
		SELECT h.song_id, s.title, a.artist_name, h.played_at,
		       h.duration_played, h.completed
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE h.user_id = $1
		ORDER BY h.played_at DESC`, userID); err != nil {
		return nil, err
	}

	export.FollowedArtists = []domain.FollowExport{}
	if err := r.db.SelectContext(ctx, &export.FollowedArtists, `
		SELECT f.artist_id, a.artist_name, f.followed_at
		FROM followers f
		JOIN artists a ON a.id = f.artist_id
		WHERE f.user_id = $1
		ORDER BY f.followed_at DESC`, userID); err != nil {
		return nil, err
	}

	return export, nil
}

func (r *PgExportRepository) ArtistExport(ctx context.Context, userID uuid.UUID) (*domain.ArtistExport, error) {
	export := &domain.ArtistExport{ExportedAt: time.Now().UTC()}

	err := r.db.GetContext(ctx, &export.Profile,
		`SELECT id, artist_name, bio, verified FROM artists WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}

	export.Songs = []domain.SongExport{}
	if err := r.db.SelectContext(ctx, &export.Songs, `
		SELECT id, title, genre, duration, plays, created_at
		FROM songs WHERE artist_id = $1
		ORDER BY created_at`, export.Profile.ID); err != nil {
		return nil, err
	}

	export.Albums = []domain.AlbumExport{}
	if err := r.db.SelectContext(ctx, &export.Albums, `
		SELECT al.id, al.title, al.release_date, COUNT(s.id) AS song_count
		FROM albums al
		LEFT JOIN songs s ON s.album_id = al.id
		WHERE al.artist_id = $1
		GROUP BY al.id
		ORDER BY al.release_date`, export.Profile.ID); err != nil {
		return nil, err
	}

	export.Analytics = []domain.DailyPlaysExport{}
	if err := r.db.SelectContext(ctx, &export.Analytics, `
		SELECT an.date, SUM(an.plays_count) AS plays_count
		FROM analytics an
		JOIN songs s ON s.id = an.song_id
		WHERE s.artist_id = $1
		GROUP BY an.date
		ORDER BY an.date`, export.Profile.ID); err != nil {
		return nil, err
	}

	return export, nil
}

func (r *PgExportRepository) PlaylistForM3U(ctx context.Context, playlistID uuid.UUID) (*domain.M3UPlaylist, error) {
	var meta struct {
		UserID uuid.UUID `db:"user_id"`
		Name   string    `db:"name"`
	}
	err := r.db.GetContext(ctx, &meta,
		`SELECT user_id, name FROM playlists WHERE id = $1`, playlistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}

	songs := []domain.TrackExport{}
	if err := r.db.SelectContext(ctx, &songs, `
		SELECT s.id AS song_id, s.title, a.artist_name, s.genre,
		       s.duration, s.file_url, ps.position
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE ps.playlist_id = $1
		ORDER BY ps.position`, playlistID); err != nil {
		return nil, err
	}

	return &domain.M3UPlaylist{OwnerID: meta.UserID, Name: meta.Name, Songs: songs}, nil
}

func (r *PgExportRepository) SongStats(ctx context.Context, userID uuid.UUID) ([]domain.SongStat, error) {
	query := `
		SELECT s.title, a.artist_name, s.genre,
		       COUNT(*) AS play_count,
		       COALESCE(SUM(h.duration_played), 0) / 60.0 AS total_minutes
		FROM listening_history h
		JOIN songs s ON s.id = h.song_id
		JOIN artists a ON a.id = s.artist_id
		WHERE h.user_id = $1
		GROUP BY s.id, a.artist_name
		ORDER BY play_count DESC`

	stats := []domain.SongStat{}
	if err := r.db.SelectContext(ctx, &stats, query, userID); err != nil {
		return nil, err
	}
	return stats, nil
}
