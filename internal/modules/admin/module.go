package admin

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/admin/application"
	persistence "github.com/adityav25/tunestream/internal/modules/admin/infrastructure/persistence/postgres"
	adminHttp "github.com/adityav25/tunestream/internal/modules/admin/interfaces/http"
)

// Module represents the Admin module
type Module struct {
	repository *persistence.PgAdminRepository
	service    *application.AdminService
	handler    *adminHttp.AdminHandler
}

// NewModule creates and initializes the Admin module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgAdminRepository(db)
	service := application.NewAdminService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    adminHttp.NewAdminHandler(service),
	}
}

// Service returns the admin service
func (m *Module) Service() *application.AdminService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *adminHttp.AdminHandler {
	return m.handler
}
