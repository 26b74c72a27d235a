package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authDomain "github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/user/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

// UserService handles profile self-service for the authenticated account.
type UserService struct {
	users authDomain.UserRepository
}

func NewUserService(users authDomain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile changes username and/or email. Empty fields keep their
// current value.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, username, email string) (*authDomain.User, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username == "" {
		username = current.Username
	}
	if email == "" {
		email = current.Email
	}

	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	if email != current.Email {
		taken, err := s.users.EmailTaken(ctx, email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, authDomain.ErrUserAlreadyExists
		}
	}

	if err := s.users.UpdateProfile(ctx, userID, username, email); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// ChangePassword verifies the current password before setting a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount removes the account. Artist profile, songs, playlists,
// likes and history go with it through the schema's cascade rules.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.users.Delete(ctx, userID)
}
