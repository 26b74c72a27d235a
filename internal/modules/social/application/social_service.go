package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/social/domain"
)

// SocialService covers likes and artist follows.
type SocialService struct {
	repo domain.SocialRepository
}

func NewSocialService(repo domain.SocialRepository) *SocialService {
	return &SocialService{repo: repo}
}

func (s *SocialService) LikeSong(ctx context.Context, userID, songID uuid.UUID) error {
	return s.repo.AddLike(ctx, userID, songID)
}

func (s *SocialService) UnlikeSong(ctx context.Context, userID, songID uuid.UUID) error {
	return s.repo.RemoveLike(ctx, userID, songID)
}

func (s *SocialService) LikedSongs(ctx context.Context, userID uuid.UUID) ([]domain.LikedSong, error) {
	return s.repo.ListLikes(ctx, userID)
}

// FollowArtist rejects unknown artists before the idempotent insert so the
// caller gets a 404 instead of a silent no-op on a bad id.
func (s *SocialService) FollowArtist(ctx context.Context, userID, artistID uuid.UUID) error {
	exists, err := s.repo.ArtistExists(ctx, artistID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrArtistNotFound
	}
	return s.repo.Follow(ctx, userID, artistID)
}

func (s *SocialService) UnfollowArtist(ctx context.Context, userID, artistID uuid.UUID) error {
	return s.repo.Unfollow(ctx, userID, artistID)
}

func (s *SocialService) IsFollowing(ctx context.Context, userID, artistID uuid.UUID) (bool, error) {
	return s.repo.IsFollowing(ctx, userID, artistID)
}

func (s *SocialService) FollowedArtists(ctx context.Context, userID uuid.UUID) ([]domain.FollowedArtist, error) {
	return s.repo.ListFollowing(ctx, userID)
}
