package playlist

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/playlist/application"
	"github.com/adityav25/tunestream/internal/modules/playlist/domain"
	persistence "github.com/adityav25/tunestream/internal/modules/playlist/infrastructure/persistence/postgres"
	playlistHttp "github.com/adityav25/tunestream/internal/modules/playlist/interfaces/http"
)

// Module represents the Playlist module
type Module struct {
	repository *persistence.PgPlaylistRepository
	service    *application.PlaylistService
	handler    *playlistHttp.PlaylistHandler
}

// NewModule creates and initializes the Playlist module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgPlaylistRepository(db)
	service := application.NewPlaylistService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    playlistHttp.NewPlaylistHandler(service),
	}
}

// Repository returns the playlist repository for use by other modules.
func (m *Module) Repository() domain.PlaylistRepository {
	return m.repository
}

// Service returns the playlist service
func (m *Module) Service() *application.PlaylistService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *playlistHttp.PlaylistHandler {
	return m.handler
}
