package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeInfo       NotificationType = "info"
	NotificationTypeNewRelease NotificationType = "new_release"
	NotificationTypeSuccess    NotificationType = "success"
	NotificationTypeError      NotificationType = "error"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Body      string           `json:"body" db:"body"`
	Type      NotificationType `json:"type" db:"type"`
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	// FollowerIDs lists the user ids following an artist.
	FollowerIDs(ctx context.Context, artistID uuid.UUID) ([]uuid.UUID, error)
	ArtistName(ctx context.Context, artistID uuid.UUID) (string, error)
}
