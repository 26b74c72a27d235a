package listening

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/listening/application"
	"github.com/adityav25/tunestream/internal/modules/listening/domain"
	persistence "github.com/adityav25/tunestream/internal/modules/listening/infrastructure/persistence/postgres"
	listeningHttp "github.com/adityav25/tunestream/internal/modules/listening/interfaces/http"
)

// Module represents the Listening module (history and stats)
type Module struct {
	repository *persistence.PgHistoryRepository
	service    *application.ListeningService
	handler    *listeningHttp.ListeningHandler
}

// NewModule creates and initializes the Listening module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgHistoryRepository(db)
	service := application.NewListeningService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    listeningHttp.NewListeningHandler(service),
	}
}

// Repository returns the history repository for use by other modules.
func (m *Module) Repository() domain.HistoryRepository {
	return m.repository
}

// Service returns the listening service
func (m *Module) Service() *application.ListeningService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *listeningHttp.ListeningHandler {
	return m.handler
}
