package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	"github.com/adityav25/tunestream/internal/modules/catalog/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

func TestPgSongRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()

	song := &domain.Song{ArtistID: uuid.New(), Title: "Track", Duration: 180, FileUrl: "https://cdn/x.mp3"}
	mock.ExpectExec("INSERT INTO songs").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, song))
	assert.NotEqual(t, uuid.Nil, song.ID)

	mock.ExpectExec("INSERT INTO songs").WillReturnError(&pq.Error{Code: "23503"})
	err := repo.Create(ctx, song)
	assert.ErrorIs(t, err, domain.ErrBadReference)
}

func TestPgSongRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "title", "duration", "plays", "artist_name"}).
		AddRow(id, "Track", 180, 42, "The Artist")
	mock.ExpectQuery(`SELECT s\.\*, a\.artist_name`).WithArgs(id).WillReturnRows(rows)

	song, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "The Artist", song.ArtistName)
	assert.EqualValues(t, 42, song.Plays)

	mock.ExpectQuery(`SELECT s\.\*, a\.artist_name`).WithArgs(id).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
}

func TestPgSongRepository_List(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()

	t.Run("returns songs with total from window count", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "total_count"}).
			AddRow(uuid.New(), "One", 7).
			AddRow(uuid.New(), "Two", 7)
		mock.ExpectQuery("SELECT s.*, a.artist_name, al.title AS album_title, COUNT").
			WithArgs(2, 0).
			WillReturnRows(rows)

		songs, total, err := repo.List(ctx, domain.SongFilter{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, songs, 2)
		assert.Equal(t, 7, total)
	})

	t.Run("genre and search filters become args", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "total_count"}).AddRow(uuid.New(), "One", 1)
		mock.ExpectQuery("SELECT s.*, a.artist_name, al.title AS album_title, COUNT").
			WithArgs("jazz", "%mile%", 10, 0).
			WillReturnRows(rows)

		_, _, err := repo.List(ctx, domain.SongFilter{Genre: "jazz", Search: "mile", Limit: 10})
		require.NoError(t, err)
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT s.*, a.artist_name, al.title AS album_title, COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "total_count"}))

		songs, total, err := repo.List(ctx, domain.SongFilter{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, songs)
		assert.Zero(t, total)
	})
}

func TestPgSongRepository_UpdateDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE songs SET title").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, id, domain.SongUpdate{Title: "New"}))

	mock.ExpectExec("UPDATE songs SET title").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, id, domain.SongUpdate{Title: "New"}), domain.ErrSongNotFound)

	mock.ExpectExec("UPDATE songs SET title").WillReturnError(&pq.Error{Code: "23503"})
	assert.ErrorIs(t, repo.Update(ctx, id, domain.SongUpdate{Title: "New"}), domain.ErrBadReference)

	mock.ExpectExec("DELETE FROM songs").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, id))

	mock.ExpectExec("DELETE FROM songs").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrSongNotFound)
}

func TestPgSongRepository_IncrementPlays(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("bumps counter and upserts analytics in one tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE songs SET plays").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO analytics").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.IncrementPlays(ctx, id))
	})

	t.Run("missing song rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE songs SET plays").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.IncrementPlays(ctx, id), domain.ErrSongNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSongRepository_OwnershipLookups(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewSongRepository(db)
	ctx := context.Background()
	songID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery("SELECT a.user_id FROM songs").WithArgs(songID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID))
	got, err := repo.OwnerUserID(ctx, songID)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	mock.ExpectQuery("SELECT a.user_id FROM songs").WithArgs(songID).WillReturnError(sql.ErrNoRows)
	_, err = repo.OwnerUserID(ctx, songID)
	assert.ErrorIs(t, err, domain.ErrSongNotFound)

	mock.ExpectQuery("SELECT id FROM artists WHERE user_id").WithArgs(userID).WillReturnError(sql.ErrNoRows)
	_, err = repo.ArtistIDForUser(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNotAnArtist)
}
