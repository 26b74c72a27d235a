package application

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/auth/infrastructure/jwt"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService provides registration, login and token verification.
type AuthService struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register creates a new account and returns the user with a fresh token.
// Artist-role registrations also get an artist profile row (handled
// transactionally by the repository).
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, "", fmt.Errorf("%w: email, password and username are required", domain.ErrValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, "", fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if len(req.Username) < 3 {
		return nil, "", fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	}

	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role != domain.RoleUser && role != domain.RoleArtist {
		return nil, "", fmt.Errorf("%w: invalid role", domain.ErrValidation)
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		Username:     req.Username,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns the user with a JWT. Unknown
// email and wrong password both map to ErrInvalidCredentials so existence
// is not leaked.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: missing email or password", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
