package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/filestorage/domain"
)

const (
	MaxAudioSize = 10 << 20 // 10MB
	MaxImageSize = 5 << 20  // 5MB

	coverSize = 640
)

var allowedAudioTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/wav":  true,
	"audio/ogg":  true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// FileService provides high-level upload operations with per-kind size
// and content-type policies.
type FileService struct {
	storage domain.FileStorage
}

// NewFileService creates a new file service
func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{storage: storage}
}

// UploadAudio validates and stores an audio file under audio/.
func (s *FileService) UploadAudio(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, string, error) {
	if header.Size > MaxAudioSize {
		return "", "", domain.ErrFileTooLarge
	}
	contentType := normalizeContentType(header.Header.Get("Content-Type"))
	if !allowedAudioTypes[contentType] {
		return "", "", domain.ErrInvalidContentType
	}

	key := generateKey("audio", header.Filename)
	url, err := s.storage.UploadFile(ctx, key, file, contentType)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// UploadImage validates an image, normalises it to a square JPEG cover
// and stores it under images/.
func (s *FileService) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, string, error) {
	if header.Size > MaxImageSize {
		return "", "", domain.ErrFileTooLarge
	}
	contentType := normalizeContentType(header.Header.Get("Content-Type"))
	if !allowedImageTypes[contentType] {
		return "", "", domain.ErrInvalidContentType
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("%w: unreadable image", domain.ErrInvalidContentType)
	}
	cover := imaging.Fill(img, coverSize, coverSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, cover, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", "", fmt.Errorf("failed to encode cover: %w", err)
	}

	key := strings.TrimSuffix(generateKey("images", header.Filename), filepath.Ext(header.Filename)) + ".jpg"
	url, err := s.storage.UploadFile(ctx, key, &buf, "image/jpeg")
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// UploadWithKey stores a raw stream under a caller-chosen key.
func (s *FileService) UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) (string, error) {
	return s.storage.UploadFile(ctx, key, file, contentType)
}

// GetPresignedURL generates a temporary read URL.
func (s *FileService) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.storage.GetPresignedURL(ctx, key, expiration)
}

// Delete removes a file by key.
func (s *FileService) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteFile(ctx, key)
}

// DeleteByURL resolves a public URL back to a key and removes the file.
func (s *FileService) DeleteByURL(ctx context.Context, fileUrl string) error {
	key, err := s.storage.GetKeyFromURL(fileUrl)
	if err != nil {
		return err
	}
	return s.storage.DeleteFile(ctx, key)
}

func generateKey(folder, filename string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), filepath.Ext(filename))
}

func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
