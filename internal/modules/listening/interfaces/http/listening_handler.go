package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/listening/application"
	"github.com/adityav25/tunestream/internal/modules/listening/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type ListeningHandler struct {
	service *application.ListeningService
}

func NewListeningHandler(service *application.ListeningService) *ListeningHandler {
	return &ListeningHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func queryInt(r *http.Request, name string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v > 0 {
		return v
	}
	return def
}

type trackPlayRequest struct {
	DurationPlayed int  `json:"duration_played"`
	Completed      bool `json:"completed"`
}

func (h *ListeningHandler) TrackPlay(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songID, err := uuid.Parse(r.PathValue("songId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var req trackPlayRequest
	if r.Body != nil {
		// Body is optional; an empty play event is a valid one.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	entry, err := h.service.TrackPlay(r.Context(), userID, songID, req.DurationPlayed, req.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			utils.RespondError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("[ListeningHandler.TrackPlay] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to record play")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *ListeningHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 50)
	if limit > 100 {
		limit = 100
	}

	entries, total, err := h.service.History(r.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		log.Printf("[ListeningHandler.History] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"history":    entries,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (h *ListeningHandler) Recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	entries, err := h.service.Recent(r.Context(), userID, limit)
	if err != nil {
		log.Printf("[ListeningHandler.Recent] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch recent plays")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": entries})
}

func (h *ListeningHandler) TopSongs(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	days := queryInt(r, "period", 30)
	limit := queryInt(r, "limit", 10)

	songs, err := h.service.TopSongs(r.Context(), userID, days, limit)
	if err != nil {
		log.Printf("[ListeningHandler.TopSongs] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch top songs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs, "period_days": days})
}

func (h *ListeningHandler) TopArtists(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	days := queryInt(r, "period", 30)
	limit := queryInt(r, "limit", 10)

	artists, err := h.service.TopArtists(r.Context(), userID, days, limit)
	if err != nil {
		log.Printf("[ListeningHandler.TopArtists] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch top artists")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"artists": artists, "period_days": days})
}

func (h *ListeningHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	days := queryInt(r, "period", 30)

	stats, err := h.service.Stats(r.Context(), userID, days)
	if err != nil {
		log.Printf("[ListeningHandler.Stats] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"stats": stats, "period_days": days})
}
