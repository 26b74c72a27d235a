package application

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/playlist/domain"
)

// PlaylistService owns playlist CRUD and enforces playlist ownership.
type PlaylistService struct {
	repo domain.PlaylistRepository
}

func NewPlaylistService(repo domain.PlaylistRepository) *PlaylistService {
	return &PlaylistService{repo: repo}
}

func (s *PlaylistService) Create(ctx context.Context, userID uuid.UUID, name string, isPublic bool) (*domain.Playlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, fmt.Errorf("%w: name must be at most 100 characters", domain.ErrValidation)
	}

	playlist := &domain.Playlist{
		UserID:   userID,
		Name:     name,
		IsPublic: isPublic,
	}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetSongs returns the ordered tracklist. Playlist songs are readable by
// anyone holding the playlist id.
func (s *PlaylistService) GetSongs(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error) {
	if _, err := s.repo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}
	return s.repo.GetSongs(ctx, playlistID)
}

func (s *PlaylistService) AddSong(ctx context.Context, userID, playlistID, songID uuid.UUID) error {
	if err := s.authorize(ctx, userID, playlistID); err != nil {
		return err
	}
	return s.repo.AddSong(ctx, playlistID, songID)
}

func (s *PlaylistService) RemoveSong(ctx context.Context, userID, playlistID, songID uuid.UUID) error {
	if err := s.authorize(ctx, userID, playlistID); err != nil {
		return err
	}
	return s.repo.RemoveSong(ctx, playlistID, songID)
}

func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	if err := s.authorize(ctx, userID, playlistID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, playlistID)
}

func (s *PlaylistService) authorize(ctx context.Context, userID, playlistID uuid.UUID) error {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.UserID != userID {
		return domain.ErrNotOwner
	}
	return nil
}

// OwnerOf reports the playlist owner. Used by the export module for its
// own ownership check.
func (s *PlaylistService) OwnerOf(ctx context.Context, playlistID uuid.UUID) (uuid.UUID, error) {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return uuid.Nil, err
	}
	return playlist.UserID, nil
}
