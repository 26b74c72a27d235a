package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/adityav25/tunestream/internal/modules/auth/infrastructure/jwt"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type contextKey string

const (
	ContextKeyUserId contextKey = "user_id"
	ContextKeyRole   contextKey = "role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	// Websocket clients cannot set headers, so fall back to a query param.
	return r.URL.Query().Get("token")
}

// RequireAuth enforces a valid bearer token and injects the caller's id
// and role into the request context. Expired tokens get a distinct message
// from invalid ones.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			utils.RespondError(w, http.StatusUnauthorized, "missing or invalid authorization")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				utils.RespondError(w, http.StatusUnauthorized, "token expired")
				return
			}
			utils.RespondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, claims.UserID)
		ctx = context.WithValue(ctx, ContextKeyRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FlexibleAuth injects identity when a valid token is present but lets
// anonymous requests through untouched.
func (m *AuthMiddleware) FlexibleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, claims.UserID)
		ctx = context.WithValue(ctx, ContextKeyRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler to the given roles. Must run inside
// RequireAuth, which populates the role in the context.
func (m *AuthMiddleware) RequireRole(next http.Handler, roles ...string) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(ContextKeyRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}
		utils.RespondError(w, http.StatusForbidden, "insufficient permissions")
	}))
}
