package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/playlist/application"
	"github.com/adityav25/tunestream/internal/modules/playlist/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type PlaylistHandler struct {
	service *application.PlaylistService
}

func NewPlaylistHandler(service *application.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlists, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		log.Printf("[PlaylistHandler.List] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list playlists")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"playlists": playlists})
}

type createPlaylistRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	playlist, err := h.service.Create(r.Context(), userID, req.Name, req.IsPublic)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[PlaylistHandler.Create] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create playlist")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, playlist)
}

func (h *PlaylistHandler) GetSongs(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}

	songs, err := h.service.GetSongs(r.Context(), playlistID)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			utils.RespondError(w, http.StatusNotFound, "playlist not found")
			return
		}
		log.Printf("[PlaylistHandler.GetSongs] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch playlist songs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

func (h *PlaylistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlistID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}

	var req struct {
		SongID uuid.UUID `json:"song_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SongID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "song_id is required")
		return
	}

	if err := h.service.AddSong(r.Context(), userID, playlistID, req.SongID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaylistNotFound):
			utils.RespondError(w, http.StatusNotFound, "playlist not found")
		case errors.Is(err, domain.ErrNotOwner):
			utils.RespondError(w, http.StatusForbidden, "you do not own this playlist")
		case errors.Is(err, domain.ErrSongAlreadyAdded):
			utils.RespondError(w, http.StatusConflict, "song already in playlist")
		case errors.Is(err, domain.ErrBadReference):
			utils.RespondError(w, http.StatusNotFound, "song not found")
		default:
			log.Printf("[PlaylistHandler.AddSong] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to add song")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "song added to playlist"})
}

func (h *PlaylistHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlistID, err := uuid.Parse(r.PathValue("playlistId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}
	songID, err := uuid.Parse(r.PathValue("songId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.RemoveSong(r.Context(), userID, playlistID, songID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaylistNotFound):
			utils.RespondError(w, http.StatusNotFound, "playlist not found")
		case errors.Is(err, domain.ErrNotOwner):
			utils.RespondError(w, http.StatusForbidden, "you do not own this playlist")
		case errors.Is(err, domain.ErrSongNotInPlaylist):
			utils.RespondError(w, http.StatusNotFound, "song not in playlist")
		default:
			log.Printf("[PlaylistHandler.RemoveSong] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to remove song")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "song removed from playlist"})
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlistID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, playlistID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaylistNotFound):
			utils.RespondError(w, http.StatusNotFound, "playlist not found")
		case errors.Is(err, domain.ErrNotOwner):
			utils.RespondError(w, http.StatusForbidden, "you do not own this playlist")
		default:
			log.Printf("[PlaylistHandler.Delete] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to delete playlist")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "playlist deleted"})
}
