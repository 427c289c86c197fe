package http

import (
	"context"
	"net/http"
	"strings"

	"encore-backend/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates the auth provider's bearer token and injects
// the caller's user id into the request context.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.verifier.Verify(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated caller's id from the request context.
func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
