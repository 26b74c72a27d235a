package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/adityav25/tunestream/internal/modules/filestorage/application"
	"github.com/adityav25/tunestream/internal/modules/filestorage/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type UploadHandler struct {
	service *application.FileService
}

func NewUploadHandler(service *application.FileService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Audio accepts a multipart upload under the "file" field.
func (h *UploadHandler) Audio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, application.MaxAudioSize+1<<20)
	if err := r.ParseMultipartForm(application.MaxAudioSize); err != nil {
		utils.RespondError(w, http.StatusRequestEntityTooLarge, "file exceeds the size limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, key, err := h.service.UploadAudio(r.Context(), file, header)
	if err != nil {
		h.writeUploadError(w, "UploadHandler.Audio", err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"url": url, "key": key})
}

// Image accepts a multipart upload and returns the stored cover URL.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, application.MaxImageSize+1<<20)
	if err := r.ParseMultipartForm(application.MaxImageSize); err != nil {
		utils.RespondError(w, http.StatusRequestEntityTooLarge, "file exceeds the size limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, key, err := h.service.UploadImage(r.Context(), file, header)
	if err != nil {
		h.writeUploadError(w, "UploadHandler.Image", err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"url": url, "key": key})
}

// Delete removes an uploaded file by storage key.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		utils.RespondError(w, http.StatusBadRequest, "key is required")
		return
	}

	if err := h.service.Delete(r.Context(), req.Key); err != nil {
		log.Printf("[UploadHandler.Delete] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete file")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "file deleted"})
}

func (h *UploadHandler) writeUploadError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		utils.RespondError(w, http.StatusRequestEntityTooLarge, "file exceeds the size limit")
	case errors.Is(err, domain.ErrInvalidContentType):
		utils.RespondError(w, http.StatusBadRequest, "file type not allowed")
	default:
		log.Printf("[%s] %v", op, err)
		utils.RespondError(w, http.StatusInternalServerError, "upload failed")
	}
}
