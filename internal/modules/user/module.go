package user

import (
	authDomain "github.com/adityav25/tunestream/internal/modules/auth/domain"
	"github.com/adityav25/tunestream/internal/modules/user/application"
	userHttp "github.com/adityav25/tunestream/internal/modules/user/interfaces/http"
)

// Module represents the User module
type Module struct {
	service *application.UserService
	handler *userHttp.UserHandler
}

// NewModule creates and initializes the User module on top of the auth
// module's user repository.
func NewModule(users authDomain.UserRepository) *Module {
	service := application.NewUserService(users)
	return &Module{
		service: service,
		handler: userHttp.NewUserHandler(service),
	}
}

// Service returns the user service
func (m *Module) Service() *application.UserService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *userHttp.UserHandler {
	return m.handler
}
