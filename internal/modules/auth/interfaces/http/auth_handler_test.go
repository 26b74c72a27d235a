package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/adityav25/tunestream/internal/modules/auth/application"
	"github.com/adityav25/tunestream/internal/modules/auth/domain"
	auth_http "github.com/adityav25/tunestream/internal/modules/auth/interfaces/http"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req application.RegisterRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, req application.LoginRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func TestRegisterHandler_Success(t *testing.T) {
	svc := new(mockAuthService)
	h := auth_http.NewAuthHandler(svc)

	reqBody := application.RegisterRequest{Email: "test@example.com", Password: "password123", Username: "testuser"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	user := &domain.User{ID: uuid.New(), Email: reqBody.Email, Username: reqBody.Username, Role: domain.RoleUser}
	svc.On("Register", mock.Anything, reqBody).Return(user, "token123", nil)

	h.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "token123", resp["token"])
	svc.AssertExpectations(t)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	svc := new(mockAuthService)
	h := auth_http.NewAuthHandler(svc)

	body, _ := json.Marshal(application.RegisterRequest{Email: "existing@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	svc.On("Register", mock.Anything, mock.Anything).Return(nil, "", domain.ErrUserAlreadyExists)

	h.Register(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterHandler_ValidationError(t *testing.T) {
	svc := new(mockAuthService)
	h := auth_http.NewAuthHandler(svc)

	body, _ := json.Marshal(application.RegisterRequest{Email: "a@a.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation))

	h.Register(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "password must be at least 6 characters")
}

func TestRegisterHandler_UnexpectedErrorIsNotLeaked(t *testing.T) {
	svc := new(mockAuthService)
	h := auth_http.NewAuthHandler(svc)

	body, _ := json.Marshal(application.RegisterRequest{Email: "a@a.com", Password: "password123", Username: "abc"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, "", errors.New("pq: connection refused at 10.0.0.5:5432"))

	h.Register(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The driver error must stay out of the response body.
	var resp map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "failed to register", resp["error"])
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestRegisterHandler_BadJSON(t *testing.T) {
	svc := new(mockAuthService)
	h := auth_http.NewAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	h.Register(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockAuthService)
		h := auth_http.NewAuthHandler(svc)

		reqBody := application.LoginRequest{Email: "a@a.com", Password: "password123"}
		body, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		user := &domain.User{ID: uuid.New(), Email: reqBody.Email, Role: domain.RoleUser}
		svc.On("Login", mock.Anything, reqBody).Return(user, "token123", nil)

		h.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := new(mockAuthService)
		h := auth_http.NewAuthHandler(svc)

		body, _ := json.Marshal(application.LoginRequest{Email: "a@a.com", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		svc.On("Login", mock.Anything, mock.Anything).Return(nil, "", domain.ErrInvalidCredentials)

		h.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := new(mockAuthService)
		h := auth_http.NewAuthHandler(svc)

		body, _ := json.Marshal(application.LoginRequest{Email: "a@a.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		svc.On("Login", mock.Anything, mock.Anything).Return(nil, "", errors.New("db down"))

		h.Login(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
