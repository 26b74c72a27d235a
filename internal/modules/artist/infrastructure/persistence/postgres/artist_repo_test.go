package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/artist/domain"
	"github.com/adityav25/tunestream/internal/modules/artist/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := sqlx.NewDb(sqlDB, "sqlmock")
	return db, mock, func() { db.Close() }
}

func TestGetByUserID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	artistID := uuid.New()

	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := postgres.NewPgArtistRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "artist_name", "bio", "avatar_url", "verified"}).
			AddRow(artistID, userID, "Nova", "synthwave", "http://cdn/a.jpg", true)
		mock.ExpectQuery(`SELECT id, user_id, artist_name, bio, avatar_url, verified`).
			WithArgs(userID).
			WillReturnRows(rows)

		artist, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Nova", artist.ArtistName)
		assert.True(t, artist.Verified)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := postgres.NewPgArtistRepository(db)

		mock.ExpectQuery(`SELECT id, user_id, artist_name`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUserID(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrArtistNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	upd := domain.ProfileUpdate{ArtistName: "Nova", Bio: "bio", AvatarUrl: "http://cdn/a.jpg"}

	t.Run("success", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := postgres.NewPgArtistRepository(db)

		mock.ExpectExec(`UPDATE artists`).
			WithArgs("Nova", "bio", "http://cdn/a.jpg", userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProfile(ctx, userID, upd))
	})

	t.Run("no profile row", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := postgres.NewPgArtistRepository(db)

		mock.ExpectExec(`UPDATE artists`).
			WithArgs("Nova", "bio", "http://cdn/a.jpg", userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateProfile(ctx, userID, upd)
		assert.ErrorIs(t, err, domain.ErrArtistNotFound)
	})
}

func TestSongs(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPgArtistRepository(db)

	artistID := uuid.New()
	genre := "house"
	rows := sqlmock.NewRows([]string{"id", "title", "genre", "duration", "cover_url", "plays", "created_at"}).
		AddRow(uuid.New(), "Second", genre, 200, "", int64(90), time.Now()).
		AddRow(uuid.New(), "First", nil, 180, "", int64(10), time.Now().Add(-time.Hour))
	mock.ExpectQuery(`FROM songs WHERE artist_id = \$1`).
		WithArgs(artistID).
		WillReturnRows(rows)

	songs, err := repo.Songs(context.Background(), artistID)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, "Second", songs[0].Title)
	require.NotNil(t, songs[0].Genre)
	assert.Equal(t, "house", *songs[0].Genre)
	assert.Nil(t, songs[1].Genre)
}

func TestAlbums(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPgArtistRepository(db)

	artistID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "title", "cover_url", "release_date", "song_count", "total_plays"}).
		AddRow(uuid.New(), "Debut", "", time.Now(), 8, int64(4200))
	mock.ExpectQuery(`LEFT JOIN songs s ON s\.album_id = al\.id`).
		WithArgs(artistID).
		WillReturnRows(rows)

	albums, err := repo.Albums(context.Background(), artistID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, 8, albums[0].SongCount)
	assert.Equal(t, int64(4200), albums[0].TotalPlays)
}

func TestDailyPlays(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPgArtistRepository(db)

	artistID := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"date", "plays_count"}).
		AddRow(day, int64(12)).
		AddRow(day.AddDate(0, 0, 1), int64(30))
	mock.ExpectQuery(`SUM\(an\.plays_count\) AS plays_count`).
		WithArgs(artistID, 30).
		WillReturnRows(rows)

	daily, err := repo.DailyPlays(context.Background(), artistID, 30)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, int64(30), daily[1].Plays)
}

func TestTotals(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPgArtistRepository(db)

	artistID := uuid.New()
	rows := sqlmock.NewRows([]string{"total_plays", "song_count"}).AddRow(int64(999), 7)
	mock.ExpectQuery(`COALESCE\(SUM\(plays\), 0\) AS total_plays`).
		WithArgs(artistID).
		WillReturnRows(rows)

	plays, count, err := repo.Totals(context.Background(), artistID)
	require.NoError(t, err)
	assert.Equal(t, int64(999), plays)
	assert.Equal(t, 7, count)
}

func TestFollowerCount(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPgArtistRepository(db)

	artistID := uuid.New()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM followers`).
		WithArgs(artistID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.FollowerCount(context.Background(), artistID)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
