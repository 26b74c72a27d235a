package export

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/export/application"
	persistence "github.com/adityav25/tunestream/internal/modules/export/infrastructure/persistence/postgres"
	exportHttp "github.com/adityav25/tunestream/internal/modules/export/interfaces/http"
)

// Module represents the Export module (data downloads)
type Module struct {
	repository *persistence.PgExportRepository
	service    *application.ExportService
	handler    *exportHttp.ExportHandler
}

// NewModule creates and initializes the Export module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgExportRepository(db)
	service := application.NewExportService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    exportHttp.NewExportHandler(service),
	}
}

// Service returns the export service
func (m *Module) Service() *application.ExportService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *exportHttp.ExportHandler {
	return m.handler
}
