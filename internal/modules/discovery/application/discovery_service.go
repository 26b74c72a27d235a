package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/discovery/domain"
)

const (
	trendingWindowDays   = 7
	newReleaseWindowDays = 30
)

// DiscoveryService computes personalised and global recommendations.
type DiscoveryService struct {
	repo domain.DiscoveryRepository
}

func NewDiscoveryService(repo domain.DiscoveryRepository) *DiscoveryService {
	return &DiscoveryService{repo: repo}
}

// Recommendations falls back to the global top chart when the user has no
// playlisted genres to learn from.
func (s *DiscoveryService) Recommendations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendedSong, error) {
	limit = clampLimit(limit)
	songs, err := s.repo.ForUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return s.repo.GlobalTop(ctx, limit)
	}
	return songs, nil
}

func (s *DiscoveryService) Trending(ctx context.Context, limit int) ([]domain.RecommendedSong, error) {
	return s.repo.Trending(ctx, trendingWindowDays, clampLimit(limit))
}

func (s *DiscoveryService) Similar(ctx context.Context, songID uuid.UUID, limit int) ([]domain.RecommendedSong, error) {
	return s.repo.Similar(ctx, songID, clampLimit(limit))
}

func (s *DiscoveryService) NewReleases(ctx context.Context, limit int) ([]domain.RecommendedSong, error) {
	return s.repo.NewReleases(ctx, newReleaseWindowDays, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
