package handler

import (
	"encoding/json"
	"net/http"

	"news-dashboard/internal/domain"
	apperrors "news-dashboard/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext extracts the authenticated session from request context
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeAppError maps an application error to its HTTP status
func writeAppError(w http.ResponseWriter, err error) {
	message := "Internal server error"
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
	}
	writeError(w, apperrors.GetStatusCode(err), message)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
