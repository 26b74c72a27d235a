package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authDomain "github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/user/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) error {
	args := m.Called(ctx, id, username, email)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	current := &authDomain.User{ID: userID, Username: "olduser", Email: "old@example.com"}

	t.Run("empty fields keep current values", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByID", ctx, userID).Return(current, nil).Twice()
		repo.On("UpdateProfile", ctx, userID, "olduser", "old@example.com").Return(nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, "", "")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("new email checked for conflicts", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByID", ctx, userID).Return(current, nil).Once()
		repo.On("EmailTaken", ctx, "taken@example.com", userID).Return(true, nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, "", "taken@example.com")
		assert.ErrorIs(t, err, authDomain.ErrUserAlreadyExists)
	})

	t.Run("short username rejected", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)
		repo.On("GetByID", ctx, userID).Return(current, nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, "ab", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("bad email rejected", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)
		repo.On("GetByID", ctx, userID).Return(current, nil).Once()

		_, err := svc.UpdateProfile(ctx, userID, "", "not-an-email")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("current-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &authDomain.User{ID: userID, PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)

		repo.On("GetByID", ctx, userID).Return(user, nil).Once()
		repo.On("UpdatePassword", ctx, userID, mock.AnythingOfType("string")).Return(nil).Once()

		require.NoError(t, svc.ChangePassword(ctx, userID, "current-pass", "new-password"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)
		repo.On("GetByID", ctx, userID).Return(user, nil).Once()

		err := svc.ChangePassword(ctx, userID, "wrong", "new-password")
		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})

	t.Run("short new password rejected before any lookup", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo)

		err := svc.ChangePassword(ctx, userID, "current-pass", "abc")
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "GetByID")
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := new(mockUserRepository)
	svc := NewUserService(repo)
	repo.On("Delete", ctx, userID).Return(nil).Once()

	require.NoError(t, svc.DeleteAccount(ctx, userID))
}
