package application

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
)

// Notifier fans out a new-release event to the artist's followers. Wired
// to the notification module; may be nil in tests.
type Notifier interface {
	NewSongReleased(ctx context.Context, artistID uuid.UUID, songTitle string)
}

// SongService owns song CRUD, ownership enforcement and play counting.
type SongService struct {
	repo     domain.SongRepository
	notifier Notifier
}

func NewSongService(repo domain.SongRepository, notifier Notifier) *SongService {
	return &SongService{repo: repo, notifier: notifier}
}

// ValidateSort checks a sort key against an allow-list. Unknown keys are a
// validation error rather than a silent default.
func ValidateSort(columns map[string]string, sort, order string) error {
	if sort != "" {
		if _, ok := columns[sort]; !ok {
			return domain.ErrInvalidSortKey
		}
	}
	if order != "" && !strings.EqualFold(order, "asc") && !strings.EqualFold(order, "desc") {
		return domain.ErrInvalidSortKey
	}
	return nil
}

func (s *SongService) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	if err := ValidateSort(domain.SongSortColumns, filter.Sort, filter.Order); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

func (s *SongService) Get(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a song owned by the caller's artist profile.
func (s *SongService) Create(ctx context.Context, userID uuid.UUID, song *domain.Song) error {
	if song.Title == "" || song.FileUrl == "" {
		return fmt.Errorf("%w: title, duration and file_url are required", domain.ErrValidation)
	}
	if song.Duration < 1 {
		return fmt.Errorf("%w: duration must be at least 1 second", domain.ErrValidation)
	}
	if _, err := url.ParseRequestURI(song.FileUrl); err != nil {
		return fmt.Errorf("%w: invalid file URL", domain.ErrValidation)
	}

	artistID, err := s.repo.ArtistIDForUser(ctx, userID)
	if err != nil {
		return err
	}
	song.ArtistID = artistID

	if err := s.repo.Create(ctx, song); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NewSongReleased(ctx, artistID, song.Title)
	}
	return nil
}

// Update mutates a song after an ownership check; admins bypass it.
func (s *SongService) Update(ctx context.Context, userID uuid.UUID, isAdmin bool, songID uuid.UUID, upd domain.SongUpdate) error {
	if err := s.authorize(ctx, userID, isAdmin, songID); err != nil {
		return err
	}
	return s.repo.Update(ctx, songID, upd)
}

// Delete removes a song after an ownership check; admins bypass it.
func (s *SongService) Delete(ctx context.Context, userID uuid.UUID, isAdmin bool, songID uuid.UUID) error {
	if err := s.authorize(ctx, userID, isAdmin, songID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, songID)
}

func (s *SongService) authorize(ctx context.Context, userID uuid.UUID, isAdmin bool, songID uuid.UUID) error {
	ownerID, err := s.repo.OwnerUserID(ctx, songID)
	if err != nil {
		return err
	}
	if ownerID != userID && !isAdmin {
		return domain.ErrNotOwner
	}
	return nil
}

// TrackPlay increments the play counter and today's analytics row.
func (s *SongService) TrackPlay(ctx context.Context, songID uuid.UUID) error {
	return s.repo.IncrementPlays(ctx, songID)
}

// AlbumService owns album CRUD and ownership enforcement.
type AlbumService struct {
	albums domain.AlbumRepository
	songs  domain.SongRepository
}

func NewAlbumService(albums domain.AlbumRepository, songs domain.SongRepository) *AlbumService {
	return &AlbumService{albums: albums, songs: songs}
}

func (s *AlbumService) List(ctx context.Context, filter domain.AlbumFilter) ([]domain.Album, int, error) {
	if err := ValidateSort(domain.AlbumSortColumns, filter.Sort, filter.Order); err != nil {
		return nil, 0, err
	}
	return s.albums.List(ctx, filter)
}

// Get returns the album with its tracklist.
func (s *AlbumService) Get(ctx context.Context, id uuid.UUID) (*domain.Album, []domain.Song, error) {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	songs, err := s.albums.GetSongs(ctx, id)
	if err != nil {
		log.Printf("[AlbumService.Get] failed to load tracklist for %s: %v", id, err)
		return nil, nil, err
	}
	return album, songs, nil
}

func (s *AlbumService) Create(ctx context.Context, userID uuid.UUID, album *domain.Album) error {
	if album.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if album.ReleaseDate.IsZero() {
		album.ReleaseDate = time.Now()
	}

	artistID, err := s.songs.ArtistIDForUser(ctx, userID)
	if err != nil {
		return err
	}
	album.ArtistID = artistID

	return s.albums.Create(ctx, album)
}

func (s *AlbumService) Update(ctx context.Context, userID uuid.UUID, albumID uuid.UUID, upd domain.AlbumUpdate) error {
	if err := s.authorize(ctx, userID, albumID); err != nil {
		return err
	}
	return s.albums.Update(ctx, albumID, upd)
}

func (s *AlbumService) Delete(ctx context.Context, userID uuid.UUID, albumID uuid.UUID) error {
	if err := s.authorize(ctx, userID, albumID); err != nil {
		return err
	}
	return s.albums.Delete(ctx, albumID)
}

func (s *AlbumService) authorize(ctx context.Context, userID uuid.UUID, albumID uuid.UUID) error {
	ownerID, err := s.albums.OwnerUserID(ctx, albumID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return domain.ErrNotOwner
	}
	return nil
}
