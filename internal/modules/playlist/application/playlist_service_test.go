package application

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/playlist/domain"
)

type mockPlaylistRepository struct {
	mock.Mock
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *mockPlaylistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistRepository) GetSongs(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistSong), args.Error(1)
}

func (m *mockPlaylistRepository) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *mockPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPlaylistCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Playlist")).Return(nil).Once()

		playlist, err := svc.Create(ctx, userID, "Road Trip", true)
		require.NoError(t, err)
		assert.Equal(t, userID, playlist.UserID)
		assert.True(t, playlist.IsPublic)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewPlaylistService(new(mockPlaylistRepository))
		_, err := svc.Create(ctx, userID, "", false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("name too long", func(t *testing.T) {
		svc := NewPlaylistService(new(mockPlaylistRepository))
		_, err := svc.Create(ctx, userID, strings.Repeat("x", 101), false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Playlist")).Return(nil).Once()

		// 60 runes, 180 bytes.
		_, err := svc.Create(ctx, userID, strings.Repeat("日", 60), false)
		assert.NoError(t, err)

		_, err = svc.Create(ctx, userID, strings.Repeat("日", 101), false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPlaylistOwnership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	playlistID := uuid.New()
	songID := uuid.New()

	playlist := &domain.Playlist{ID: playlistID, UserID: owner}

	t.Run("owner adds song", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("GetByID", ctx, playlistID).Return(playlist, nil).Once()
		repo.On("AddSong", ctx, playlistID, songID).Return(nil).Once()

		require.NoError(t, svc.AddSong(ctx, owner, playlistID, songID))
	})

	t.Run("stranger cannot add", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("GetByID", ctx, playlistID).Return(playlist, nil).Once()

		assert.ErrorIs(t, svc.AddSong(ctx, stranger, playlistID, songID), domain.ErrNotOwner)
		repo.AssertNotCalled(t, "AddSong")
	})

	t.Run("duplicate song surfaces conflict", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("GetByID", ctx, playlistID).Return(playlist, nil).Once()
		repo.On("AddSong", ctx, playlistID, songID).Return(domain.ErrSongAlreadyAdded).Once()

		assert.ErrorIs(t, svc.AddSong(ctx, owner, playlistID, songID), domain.ErrSongAlreadyAdded)
	})

	t.Run("missing playlist", func(t *testing.T) {
		repo := new(mockPlaylistRepository)
		svc := NewPlaylistService(repo)
		repo.On("GetByID", ctx, playlistID).Return(nil, domain.ErrPlaylistNotFound).Once()

		assert.ErrorIs(t, svc.Delete(ctx, owner, playlistID), domain.ErrPlaylistNotFound)
	})
}

func TestPlaylistGetSongs(t *testing.T) {
	ctx := context.Background()
	playlistID := uuid.New()

	repo := new(mockPlaylistRepository)
	svc := NewPlaylistService(repo)

	tracklist := []domain.PlaylistSong{{Title: "One", Position: 1}, {Title: "Two", Position: 2}}
	repo.On("GetByID", ctx, playlistID).Return(&domain.Playlist{ID: playlistID}, nil).Once()
	repo.On("GetSongs", ctx, playlistID).Return(tracklist, nil).Once()

	songs, err := svc.GetSongs(ctx, playlistID)
	require.NoError(t, err)
	assert.Len(t, songs, 2)
}

func TestPlaylistOwnerOf(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	playlistID := uuid.New()

	repo := new(mockPlaylistRepository)
	svc := NewPlaylistService(repo)
	repo.On("GetByID", ctx, playlistID).Return(&domain.Playlist{ID: playlistID, UserID: owner}, nil).Once()

	got, err := svc.OwnerOf(ctx, playlistID)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}
