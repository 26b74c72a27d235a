package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/listening/domain"
)

// ListeningService records playback events and reports per-user stats.
type ListeningService struct {
	repo domain.HistoryRepository
}

func NewListeningService(repo domain.HistoryRepository) *ListeningService {
	return &ListeningService{repo: repo}
}

// TrackPlay appends a history row for the user.
func (s *ListeningService) TrackPlay(ctx context.Context, userID, songID uuid.UUID, durationPlayed int, completed bool) (*domain.HistoryEntry, error) {
	if durationPlayed < 0 {
		durationPlayed = 0
	}
	entry := &domain.HistoryEntry{
		UserID:         userID,
		SongID:         songID,
		DurationPlayed: durationPlayed,
		Completed:      completed,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ListeningService) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.HistoryEntry, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *ListeningService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	return s.repo.Recent(ctx, userID, limit)
}

func (s *ListeningService) TopSongs(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopSong, error) {
	return s.repo.TopSongs(ctx, userID, clampDays(days), limit)
}

func (s *ListeningService) TopArtists(ctx context.Context, userID uuid.UUID, days, limit int) ([]domain.TopArtist, error) {
	return s.repo.TopArtists(ctx, userID, clampDays(days), limit)
}

func (s *ListeningService) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.Stats, error) {
	days = clampDays(days)
	stats, err := s.repo.Stats(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	stats.PeriodDays = days
	return stats, nil
}

// clampDays keeps the stats window inside [1, 365] with a 30-day default.
func clampDays(days int) int {
	if days <= 0 {
		return 30
	}
	if days > 365 {
		return 365
	}
	return days
}
