package http_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
)

type mockSongRepository struct {
	mock.Mock
}

func (m *mockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *mockSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Song), args.Int(1), args.Error(2)
}

func (m *mockSongRepository) Update(ctx context.Context, id uuid.UUID, upd domain.SongUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *mockSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSongRepository) OwnerUserID(ctx context.Context, songID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSongRepository) ArtistIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSongRepository) IncrementPlays(ctx context.Context, songID uuid.UUID) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}
