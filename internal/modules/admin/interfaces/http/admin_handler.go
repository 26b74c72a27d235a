package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/admin/application"
	"github.com/adityav25/tunestream/internal/modules/admin/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type AdminHandler struct {
	service *application.AdminService
}

func NewAdminHandler(service *application.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func parsePagination(r *http.Request) (page, limit, offset int) {
	page = 1
	limit = 50
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, (page - 1) * limit
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	users, total, err := h.service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[AdminHandler.ListUsers] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"users":      users,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[AdminHandler.DeleteUser] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

func (h *AdminHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	artists, total, err := h.service.ListArtists(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[AdminHandler.ListArtists] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list artists")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"artists":    artists,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (h *AdminHandler) VerifyArtist(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetArtistVerified(r.Context(), id, req.Verified); err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			utils.RespondError(w, http.StatusNotFound, "artist not found")
			return
		}
		log.Printf("[AdminHandler.VerifyArtist] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to update artist")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"verified": req.Verified})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.PlatformStats(r.Context())
	if err != nil {
		log.Printf("[AdminHandler.Stats] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load platform stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}
