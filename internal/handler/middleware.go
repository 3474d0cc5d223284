package handler

import (
	"context"
	"net/http"
	"strings"

	"news-dashboard/internal/domain"
	"news-dashboard/internal/service"
)

// SessionMiddleware is the auth gate for protected routes. It re-evaluates
// the session on every request, so an external session restore or expiry
// takes effect immediately rather than only at initial mount.
func SessionMiddleware(sessions domain.SessionService, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			session, err := sessions.Validate(parts[1])
			if err != nil {
				logger.Debug("Session validation failed", "error", err)
				writeAppError(w, err)
				return
			}

			if service.Decide(session) != service.DecisionRender {
				writeError(w, http.StatusUnauthorized, "Sign in required")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
