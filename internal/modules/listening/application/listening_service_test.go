package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/modules/listening/domain"
)

type mockHistoryRepository struct {
	mock.Mock
}

func (m *mockHistoryRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockHistoryRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.HistoryEntry, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Int(1), args.Error(2)
}

func (m *mockHistoryRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *mockHistoryRepository) TopSongs(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopSong, error) {
	args := m.Called(ctx, userID, days, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopSong), args.Error(1)
}

func (m *mockHistoryRepository) TopArtists(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopArtist, error) {
	args := m.Called(ctx, userID, days, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopArtist), args.Error(1)
}

func (m *mockHistoryRepository) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.Stats, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func TestTrackPlay(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	songID := uuid.New()

	t.Run("records entry", func(t *testing.T) {
		repo := new(mockHistoryRepository)
		svc := NewListeningService(repo)
		repo.On("Add", ctx, mock.AnythingOfType("*domain.HistoryEntry")).Return(nil).Once()

		entry, err := svc.TrackPlay(ctx, userID, songID, 120, true)
		require.NoError(t, err)
		assert.Equal(t, 120, entry.DurationPlayed)
		assert.True(t, entry.Completed)
	})

	t.Run("negative duration clamped to zero", func(t *testing.T) {
		repo := new(mockHistoryRepository)
		svc := NewListeningService(repo)
		repo.On("Add", ctx, mock.AnythingOfType("*domain.HistoryEntry")).Return(nil).Once()

		entry, err := svc.TrackPlay(ctx, userID, songID, -5, false)
		require.NoError(t, err)
		assert.Zero(t, entry.DurationPlayed)
	})

	t.Run("missing song surfaces", func(t *testing.T) {
		repo := new(mockHistoryRepository)
		svc := NewListeningService(repo)
		repo.On("Add", ctx, mock.Anything).Return(domain.ErrSongNotFound).Once()

		_, err := svc.TrackPlay(ctx, userID, songID, 10, false)
		assert.ErrorIs(t, err, domain.ErrSongNotFound)
	})
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 30, clampDays(0))
	assert.Equal(t, 30, clampDays(-7))
	assert.Equal(t, 7, clampDays(7))
	assert.Equal(t, 365, clampDays(9999))
}

func TestStatsWindowClamped(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := new(mockHistoryRepository)
	svc := NewListeningService(repo)

	stats := &domain.Stats{TotalPlays: 12}
	repo.On("Stats", ctx, userID, 365).Return(stats, nil).Once()

	got, err := svc.Stats(ctx, userID, 100000)
	require.NoError(t, err)
	assert.EqualValues(t, 12, got.TotalPlays)
	// The clamped window, not the requested one, is echoed back.
	assert.Equal(t, 365, got.PeriodDays)

	repo.On("Stats", ctx, userID, 30).Return(&domain.Stats{}, nil).Once()
	got, err = svc.Stats(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, got.PeriodDays)
}
