package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/artist/application"
	"github.com/adityav25/tunestream/internal/modules/artist/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type ArtistHandler struct {
	service *application.ArtistService
}

func NewArtistHandler(service *application.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func (h *ArtistHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	artist, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		h.writeError(w, "ArtistHandler.Profile", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var upd domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	artist, err := h.service.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		h.writeError(w, "ArtistHandler.UpdateProfile", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Songs(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songs, err := h.service.Songs(r.Context(), userID)
	if err != nil {
		h.writeError(w, "ArtistHandler.Songs", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

func (h *ArtistHandler) Albums(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	albums, err := h.service.Albums(r.Context(), userID)
	if err != nil {
		h.writeError(w, "ArtistHandler.Albums", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"albums": albums})
}

func (h *ArtistHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	analytics, err := h.service.Analytics(r.Context(), userID)
	if err != nil {
		h.writeError(w, "ArtistHandler.Analytics", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, analytics)
}

func (h *ArtistHandler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	count, err := h.service.Followers(r.Context(), userID)
	if err != nil {
		h.writeError(w, "ArtistHandler.Followers", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int{"followers": count})
}

func (h *ArtistHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrArtistNotFound):
		utils.RespondError(w, http.StatusNotFound, "artist profile not found")
	case errors.Is(err, domain.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[%s] %v", op, err)
		utils.RespondError(w, http.StatusInternalServerError, "operation failed")
	}
}
