package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/catalog/application"
	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type AlbumHandler struct {
	service *application.AlbumService
}

func NewAlbumHandler(service *application.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r, 20)
	q := r.URL.Query()

	filter := domain.AlbumFilter{
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Limit:  limit,
		Offset: offset,
	}

	albums, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSortKey) {
			utils.RespondError(w, http.StatusBadRequest, "invalid sort parameter")
			return
		}
		log.Printf("[AlbumHandler.List] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list albums")
		return
	}
	if albums == nil {
		albums = []domain.Album{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"albums":     albums,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid album id")
		return
	}

	album, songs, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlbumNotFound) {
			utils.RespondError(w, http.StatusNotFound, "album not found")
			return
		}
		log.Printf("[AlbumHandler.Get] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch album")
		return
	}
	if songs == nil {
		songs = []domain.Song{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"album": album,
		"songs": songs,
	})
}

type createAlbumRequest struct {
	Title       string    `json:"title"`
	CoverUrl    string    `json:"cover_url"`
	ReleaseDate time.Time `json:"release_date"`
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	album := &domain.Album{
		Title:       req.Title,
		CoverUrl:    req.CoverUrl,
		ReleaseDate: req.ReleaseDate,
	}

	if err := h.service.Create(r.Context(), userID, album); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAnArtist):
			utils.RespondError(w, http.StatusForbidden, "artist profile required")
		case errors.Is(err, domain.ErrValidation):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[AlbumHandler.Create] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to create album")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, album)
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid album id")
		return
	}

	var upd domain.AlbumUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), userID, id, upd); err != nil {
		h.writeMutationError(w, "AlbumHandler.Update", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "album updated"})
}

// Delete removes the album; its songs survive with album_id cleared.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid album id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.writeMutationError(w, "AlbumHandler.Delete", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "album deleted"})
}

func (h *AlbumHandler) writeMutationError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrAlbumNotFound):
		utils.RespondError(w, http.StatusNotFound, "album not found")
	case errors.Is(err, domain.ErrNotOwner):
		utils.RespondError(w, http.StatusForbidden, "you do not own this album")
	case errors.Is(err, domain.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[%s] %v", op, err)
		utils.RespondError(w, http.StatusInternalServerError, "operation failed")
	}
}
