package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/adityav25/tunestream/internal/modules/auth/application"
	"github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Register(ctx context.Context, req application.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req application.LoginRequest) (*domain.User, string, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type userSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toSummary(u *domain.User) userSummary {
	return userSummary{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			utils.RespondError(w, http.StatusConflict, "email already registered")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[AuthHandler.Register] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  toSummary(user),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[AuthHandler.Login] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  toSummary(user),
	})
}
