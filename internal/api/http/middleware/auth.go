package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"buxmate-backend/internal/auth"
	"buxmate-backend/internal/logger"
	"buxmate-backend/internal/service"
)

// AuthMiddleware verifies the bearer token with the configured identity
// provider and attaches the local user to the request context. Credential
// validation itself lives entirely with the provider.
type AuthMiddleware struct {
	verifier auth.Verifier
	users    service.UserService
}

func NewAuthMiddleware(verifier auth.Verifier, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		principal, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		user, err := m.users.EnsureUser(r.Context(), principal.Subject, principal.Email)
		if err != nil {
			logger.Error("Failed to resolve user for principal", "subject", principal.Subject, "error", err)
			unauthorized(w, "could not resolve account")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
