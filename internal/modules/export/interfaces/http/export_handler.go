package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/export/application"
	"github.com/adityav25/tunestream/internal/modules/export/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type ExportHandler struct {
	service *application.ExportService
}

func NewExportHandler(service *application.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func (h *ExportHandler) UserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	export, err := h.service.UserData(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[ExportHandler.UserData] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to export user data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="user-data.json"`)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(export)
}

func (h *ExportHandler) ArtistData(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	export, err := h.service.ArtistData(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			utils.RespondError(w, http.StatusForbidden, "artist profile required")
			return
		}
		log.Printf("[ExportHandler.ArtistData] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to export artist data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="artist-data.json"`)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(export)
}

func (h *ExportHandler) PlaylistM3U(w http.ResponseWriter, r *http.Request) {
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

	body, name, err := h.service.PlaylistM3U(r.Context(), userID, playlistID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaylistNotFound):
			utils.RespondError(w, http.StatusNotFound, "playlist not found")
		case errors.Is(err, domain.ErrNotOwner):
			utils.RespondError(w, http.StatusForbidden, "you do not own this playlist")
		default:
			log.Printf("[ExportHandler.PlaylistM3U] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to export playlist")
		}
		return
	}

	w.Header().Set("Content-Type", "audio/x-mpegurl")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.m3u"`, sanitizeFilename(name)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *ExportHandler) StatsCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.service.StatsCSV(r.Context(), userID)
	if err != nil {
		log.Printf("[ExportHandler.StatsCSV] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to export stats")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="listening-stats.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		log.Printf("[ExportHandler.StatsCSV] write: %v", err)
	}
}

// sanitizeFilename keeps header-safe characters in download filenames.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(`"`, "", `\`, "", "/", "-", "\n", "", "\r", "")
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		return "playlist"
	}
	return cleaned
}
