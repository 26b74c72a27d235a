package social

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/social/application"
	"github.com/adityav25/tunestream/internal/modules/social/domain"
	persistence "github.com/adityav25/tunestream/internal/modules/social/infrastructure/persistence/postgres"
	socialHttp "github.com/adityav25/tunestream/internal/modules/social/interfaces/http"
)

// Module represents the Social module (likes and follows)
type Module struct {
	repository *persistence.PgSocialRepository
	service    *application.SocialService
	handler    *socialHttp.SocialHandler
}

// NewModule creates and initializes the Social module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewPgSocialRepository(db)
	service := application.NewSocialService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    socialHttp.NewSocialHandler(service),
	}
}

// Repository returns the social repository for use by other modules.
func (m *Module) Repository() domain.SocialRepository {
	return m.repository
}

// Service returns the social service
func (m *Module) Service() *application.SocialService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *socialHttp.SocialHandler {
	return m.handler
}
