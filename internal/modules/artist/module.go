package artist

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/artist/application"
	"github.com/adityav25/tunestream/internal/modules/artist/domain"
	persistence "github.com/adityav25/tunestream/internal/modules/artist/infrastructure/persistence/postgres"
	artistHttp "github.com/adityav25/tunestream/internal/modules/artist/interfaces/http"
)

// Module represents the Artist module (self-service dashboard)
type Module struct {
	repository *persistence.PgArtistRepository
	service    *application.ArtistService
	handler    *artistHttp.ArtistHandler
}

// NewModule creates and initializes the Artist module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgArtistRepository(db)
	service := application.NewArtistService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    artistHttp.NewArtistHandler(service),
	}
}

// Repository returns the artist repository for use by other modules.
func (m *Module) Repository() domain.ArtistRepository {
	return m.repository
}

// Service returns the artist service
func (m *Module) Service() *application.ArtistService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *artistHttp.ArtistHandler {
	return m.handler
}
