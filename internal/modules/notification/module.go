package notification

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/notification/application"
	"github.com/adityav25/tunestream/internal/modules/notification/infrastructure/persistence/postgres"
	"github.com/adityav25/tunestream/internal/modules/notification/infrastructure/websocket"
	notificationHttp "github.com/adityav25/tunestream/internal/modules/notification/interfaces/http"
)

// Module represents the Notification module
type Module struct {
	service *application.NotificationService
	handler *notificationHttp.NotificationHandler
	hub     *websocket.Hub
}

// NewModule creates and initializes the Notification module and starts
// its websocket hub.
func NewModule(db *sqlx.DB) *Module {
	repo := postgres.NewPgNotificationRepository(db)
	hub := websocket.NewHub()
	go hub.Run()

	service := application.NewNotificationService(repo, hub)
	handler := notificationHttp.NewNotificationHandler(service, hub)

	return &Module{
		service: service,
		handler: handler,
		hub:     hub,
	}
}

// Service returns the notification service
func (m *Module) Service() *application.NotificationService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *notificationHttp.NotificationHandler {
	return m.handler
}

// Hub returns the websocket hub for shutdown wiring.
func (m *Module) Hub() *websocket.Hub {
	return m.hub
}
