package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/artist/domain"
)

const analyticsWindowDays = 30

// ArtistService backs the artist self-service dashboard.
type ArtistService struct {
	repo domain.ArtistRepository
}

func NewArtistService(repo domain.ArtistRepository) *ArtistService {
	return &ArtistService{repo: repo}
}

func (s *ArtistService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Artist, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// UpdateProfile keeps current values for fields the caller leaves empty.
func (s *ArtistService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.Artist, error) {
	current, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.ArtistName == "" {
		upd.ArtistName = current.ArtistName
	}
	if len(upd.ArtistName) < 2 {
		return nil, fmt.Errorf("%w: artist name must be at least 2 characters", domain.ErrValidation)
	}
	if upd.Bio == "" {
		upd.Bio = current.Bio
	}
	if upd.AvatarUrl == "" {
		upd.AvatarUrl = current.AvatarUrl
	}

	if err := s.repo.UpdateProfile(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ArtistService) Songs(ctx context.Context, userID uuid.UUID) ([]domain.CatalogSong, error) {
	artist, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.Songs(ctx, artist.ID)
}

func (s *ArtistService) Albums(ctx context.Context, userID uuid.UUID) ([]domain.CatalogAlbum, error) {
	artist, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.Albums(ctx, artist.ID)
}

// Analytics aggregates catalog totals, follower count and a 30-day daily
// play series.
func (s *ArtistService) Analytics(ctx context.Context, userID uuid.UUID) (*domain.Analytics, error) {
	artist, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalPlays, songCount, err := s.repo.Totals(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.repo.FollowerCount(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.DailyPlays(ctx, artist.ID, analyticsWindowDays)
	if err != nil {
		return nil, err
	}

	return &domain.Analytics{
		TotalPlays: totalPlays,
		SongCount:  songCount,
		Followers:  followers,
		Daily:      daily,
	}, nil
}

func (s *ArtistService) Followers(ctx context.Context, userID uuid.UUID) (int, error) {
	artist, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.repo.FollowerCount(ctx, artist.ID)
}
