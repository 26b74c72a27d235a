package auth

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/auth/application"
	"github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/auth/infrastructure/persistence/postgres"
	auth_http "github.com/adityav25/tunestream/internal/modules/auth/interfaces/http"
)

// Module wires the auth feature: user repository, service and handler.
type Module struct {
	service    *application.AuthService
	repository *postgres.PgUserRepository
	handler    *auth_http.AuthHandler
}

func NewModule(db *sqlx.DB, jwtSecret string, jwtExpiry time.Duration) *Module {
	repository := postgres.NewUserRepository(db)
	service := application.NewAuthService(repository, jwtSecret, jwtExpiry)
	handler := auth_http.NewAuthHandler(service)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}
}

func (m *Module) Service() *application.AuthService {
	return m.service
}

// UserRepository exposes user persistence to the user module.
func (m *Module) UserRepository() domain.UserRepository {
	return m.repository
}

func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
