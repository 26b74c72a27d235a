package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/notification/domain"
	"github.com/adityav25/tunestream/internal/modules/notification/infrastructure/websocket"
)

type NotificationService struct {
	repo domain.NotificationRepository
	hub  *websocket.Hub
}

func NewNotificationService(repo domain.NotificationRepository, hub *websocket.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Create persists a notification and pushes it to the user's live
// websocket connections if any.
func (s *NotificationService) Create(ctx context.Context, userID uuid.UUID, title, body string, kind domain.NotificationType) error {
	notification := &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Type:      kind,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	s.hub.SendToUser(userID, notification)
	return nil
}

// NewSongReleased fans a new-release notification out to every follower
// of the artist. Failures are logged per follower; one bad insert must
// not block the rest.
func (s *NotificationService) NewSongReleased(ctx context.Context, artistID uuid.UUID, songTitle string) {
	artistName, err := s.repo.ArtistName(ctx, artistID)
	if err != nil {
		log.Printf("[NotificationService.NewSongReleased] artist lookup: %v", err)
		return
	}
	followerIDs, err := s.repo.FollowerIDs(ctx, artistID)
	if err != nil {
		log.Printf("[NotificationService.NewSongReleased] follower lookup: %v", err)
		return
	}

	title := "New release"
	body := fmt.Sprintf("%s just released '%s'", artistName, songTitle)
	for _, followerID := range followerIDs {
		if err := s.Create(ctx, followerID, title, body, domain.NotificationTypeNewRelease); err != nil {
			log.Printf("[NotificationService.NewSongReleased] notify %s: %v", followerID, err)
		}
	}
}

func (s *NotificationService) GetHub() *websocket.Hub {
	return s.hub
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}
