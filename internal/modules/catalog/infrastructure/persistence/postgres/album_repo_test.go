package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	"github.com/adityav25/tunestream/internal/modules/catalog/infrastructure/persistence/postgres"
)

func TestPgAlbumRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewAlbumRepository(db)
	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "title", "artist_name", "song_count", "total_plays"}).
		AddRow(id, "LP", "The Artist", 12, 3400)
	mock.ExpectQuery("SELECT a.id, a.artist_id").WithArgs(id).WillReturnRows(rows)

	album, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 12, album.SongCount)
	assert.EqualValues(t, 3400, album.TotalPlays)

	mock.ExpectQuery("SELECT a.id, a.artist_id").WithArgs(id).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrAlbumNotFound)
}

func TestPgAlbumRepository_List(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewAlbumRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "song_count", "total_plays", "total_count"}).
		AddRow(uuid.New(), "First", 3, 10, 2).
		AddRow(uuid.New(), "Second", 5, 99, 2)
	mock.ExpectQuery("SELECT a.id, a.artist_id").WithArgs(20, 0).WillReturnRows(rows)

	albums, total, err := repo.List(ctx, domain.AlbumFilter{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, albums, 2)
	assert.Equal(t, 2, total)
}

func TestPgAlbumRepository_Delete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewAlbumRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("detaches songs then deletes", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE songs SET album_id = NULL").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM albums").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("missing album rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE songs SET album_id = NULL").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM albums").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrAlbumNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgAlbumRepository_Update(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewAlbumRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE albums SET title").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, id, domain.AlbumUpdate{Title: "New"}))

	mock.ExpectExec("UPDATE albums SET title").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, id, domain.AlbumUpdate{Title: "New"}), domain.ErrAlbumNotFound)
}
