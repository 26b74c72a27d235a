package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/catalog/application"
	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type SongHandler struct {
	service *application.SongService
}

func NewSongHandler(service *application.SongService) *SongHandler {
	return &SongHandler{service: service}
}

// parsePagination reads page/limit query params with sane clamps.
func parsePagination(r *http.Request, defaultLimit int) (page, limit, offset int) {
	page = 1
	limit = defaultLimit
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

func callerIdentity(r *http.Request) (uuid.UUID, bool, bool) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		return uuid.Nil, false, false
	}
	role, _ := r.Context().Value(middleware.ContextKeyRole).(string)
	return userID, role == "admin", true
}

func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r, 50)
	q := r.URL.Query()

	filter := domain.SongFilter{
		Genre:  q.Get("genre"),
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Limit:  limit,
		Offset: offset,
	}

	songs, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSortKey) {
			utils.RespondError(w, http.StatusBadRequest, "invalid sort parameter")
			return
		}
		log.Printf("[SongHandler.List] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list songs")
		return
	}
	if songs == nil {
		songs = []domain.Song{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"songs":      songs,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	song, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			utils.RespondError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("[SongHandler.Get] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch song")
		return
	}
	utils.RespondJSON(w, http.StatusOK, song)
}

type createSongRequest struct {
	Title    string     `json:"title"`
	Duration int        `json:"duration"`
	FileUrl  string     `json:"file_url"`
	Genre    *string    `json:"genre"`
	CoverUrl string     `json:"cover_url"`
	AlbumID  *uuid.UUID `json:"album_id"`
}

func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	song := &domain.Song{
		Title:    req.Title,
		Duration: req.Duration,
		FileUrl:  req.FileUrl,
		Genre:    req.Genre,
		CoverUrl: req.CoverUrl,
		AlbumID:  req.AlbumID,
	}

	if err := h.service.Create(r.Context(), userID, song); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAnArtist):
			utils.RespondError(w, http.StatusForbidden, "artist profile required")
		case errors.Is(err, domain.ErrBadReference):
			utils.RespondError(w, http.StatusBadRequest, "referenced album does not exist")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[SongHandler.Create] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to create song")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, song)
}

func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var upd domain.SongUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), userID, isAdmin, id, upd); err != nil {
		h.writeMutationError(w, "SongHandler.Update", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "song updated"})
}

func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, isAdmin, id); err != nil {
		h.writeMutationError(w, "SongHandler.Delete", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "song deleted"})
}

// Play bumps the play counter; no auth so anonymous listens count too.
func (h *SongHandler) Play(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.TrackPlay(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			utils.RespondError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("[SongHandler.Play] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to record play")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "play recorded"})
}

func (h *SongHandler) writeMutationError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrSongNotFound):
		utils.RespondError(w, http.StatusNotFound, "song not found")
	case errors.Is(err, domain.ErrNotOwner):
		utils.RespondError(w, http.StatusForbidden, "you do not own this song")
	case errors.Is(err, domain.ErrBadReference):
		utils.RespondError(w, http.StatusBadRequest, "referenced album does not exist")
	case errors.Is(err, domain.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[%s] %v", op, err)
		utils.RespondError(w, http.StatusInternalServerError, "operation failed")
	}
}
