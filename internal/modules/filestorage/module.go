package filestorage

import (
	"context"
	"fmt"

	"github.com/adityav25/tunestream/internal/modules/filestorage/application"
	"github.com/adityav25/tunestream/internal/modules/filestorage/domain"
	"github.com/adityav25/tunestream/internal/modules/filestorage/infrastructure/local"
	"github.com/adityav25/tunestream/internal/modules/filestorage/infrastructure/s3"
	storageHttp "github.com/adityav25/tunestream/internal/modules/filestorage/interfaces/http"
	"github.com/adityav25/tunestream/internal/shared/infrastructure/config"
)

// Module represents the FileStorage module
type Module struct {
	service *application.FileService
	storage domain.FileStorage
	handler *storageHttp.UploadHandler
}

// NewModule creates and initializes the FileStorage module
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.FileStorage
	var err error

	if cfg.UseS3 {
		storage, err = s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	} else {
		storage, err = local.NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	service := application.NewFileService(storage)

	return &Module{
		service: service,
		storage: storage,
		handler: storageHttp.NewUploadHandler(service),
	}, nil
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *storageHttp.UploadHandler {
	return m.handler
}
