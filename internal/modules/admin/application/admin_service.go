package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/admin/domain"
)

// AdminService exposes platform administration operations.
type AdminService struct {
	repo domain.AdminRepository
}

func NewAdminService(repo domain.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]domain.AccountSummary, int, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *AdminService) ListArtists(ctx context.Context, limit, offset int) ([]domain.ArtistSummary, int, error) {
	return s.repo.ListArtists(ctx, limit, offset)
}

func (s *AdminService) SetArtistVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return s.repo.SetArtistVerified(ctx, id, verified)
}

func (s *AdminService) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	return s.repo.PlatformStats(ctx)
}
