package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adityav25/tunestream/internal/modules/auth/domain"
)

type PgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a PostgreSQL-based user repository.
func NewUserRepository(db *sqlx.DB) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// Create inserts a new user. For artist-role users the artist profile row
// is created in the same transaction so a user can never exist without its
// artist row.
func (r *PgUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (id, email, password_hash, username, role, created_at)
		VALUES (:id, :email, :password_hash, :username, :role, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	if user.Role == domain.RoleArtist {
		artistQuery := `INSERT INTO artists (id, user_id, artist_name) VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, artistQuery, uuid.New(), user.ID, user.Username); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByEmail implements domain.UserRepository
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.GetContext(ctx, user, `SELECT * FROM users WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID implements domain.UserRepository
func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.GetContext(ctx, user, `SELECT * FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates username and email.
func (r *PgUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = $1, email = $2 WHERE id = $3`, username, email, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *PgUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user; owned rows go with it via FK cascade.
func (r *PgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EmailTaken reports whether another user already holds the email.
func (r *PgUserRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.GetContext(ctx, &taken,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`, email, excludeID)
	return taken, err
}
