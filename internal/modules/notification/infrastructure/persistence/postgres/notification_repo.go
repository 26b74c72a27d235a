package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/notification/domain"
)

type PgNotificationRepository struct {
	db *sqlx.DB
}

func NewPgNotificationRepository(db *sqlx.DB) *PgNotificationRepository {
	return &PgNotificationRepository{db: db}
}

func (r *PgNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, body, type, read, created_at)
		VALUES (:id, :user_id, :title, :body, :type, :read, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, n)
	return err
}

func (r *PgNotificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, title, body, type, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	notifications := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead scopes the update to the owner so users cannot mark each
// other's notifications.
func (r *PgNotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *PgNotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1`, userID)
	return err
}

func (r *PgNotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID)
	return count, err
}

func (r *PgNotificationRepository) FollowerIDs(ctx context.Context, artistID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids,
		`SELECT user_id FROM followers WHERE artist_id = $1`, artistID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PgNotificationRepository) ArtistName(ctx context.Context, artistID uuid.UUID) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name,
		`SELECT artist_name FROM artists WHERE id = $1`, artistID)
	return name, err
}
