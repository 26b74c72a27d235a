package discovery

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/adityav25/tunestream/internal/modules/discovery/application"
	persistence "github.com/adityav25/tunestream/internal/modules/discovery/infrastructure/persistence/postgres"
	discoveryHttp "github.com/adityav25/tunestream/internal/modules/discovery/interfaces/http"
)

// Module represents the Discovery module (recommendations and charts)
type Module struct {
	repository *persistence.PgDiscoveryRepository
	service    *application.DiscoveryService
	handler    *discoveryHttp.DiscoveryHandler
}

// NewModule creates and initializes the Discovery module
func NewModule(db *sqlx.DB, redisClient *redis.Client) *Module {
	repository := persistence.NewPgDiscoveryRepository(db)
	service := application.NewDiscoveryService(repository)

	return &Module{
		repository: repository,
		service:    service,
		handler:    discoveryHttp.NewDiscoveryHandler(service, redisClient),
	}
}

// Service returns the discovery service
func (m *Module) Service() *application.DiscoveryService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *discoveryHttp.DiscoveryHandler {
	return m.handler
}
