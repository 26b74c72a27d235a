package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	authDomain "github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/user/application"
	"github.com/adityav25/tunestream/internal/modules/user/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type UserHandler struct {
	service *application.UserService
}

func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			utils.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[UserHandler.GetMe] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, req.Username, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, authDomain.ErrUserAlreadyExists):
			utils.RespondError(w, http.StatusConflict, "email already registered")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authDomain.ErrUserNotFound):
			utils.RespondError(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("[UserHandler.UpdateMe] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrWrongPassword):
			utils.RespondError(w, http.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authDomain.ErrUserNotFound):
			utils.RespondError(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("[UserHandler.ChangePassword] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to change password")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			utils.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[UserHandler.DeleteMe] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete account")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
