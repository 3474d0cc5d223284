package handler

import (
	"encoding/json"
	"net/http"

	"news-dashboard/internal/domain"
)

// AuthHandler handles sign-in and session lifecycle requests
type AuthHandler struct {
	sessions   domain.SessionService
	dashboards domain.DashboardService
	logger     domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(sessions domain.SessionService, dashboards domain.DashboardService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		dashboards: dashboards,
		logger:     logger,
	}
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Login validates the credentials and creates the session, overwriting any
// prior one.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessions.SignIn(req.UserID, req.Password, req.Email)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Logout deletes the session and drops the user's dashboard; idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := GetSessionFromContext(r); ok {
		h.dashboards.Drop(session.UserID)
	}
	if err := h.sessions.SignOut(); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// GetSession returns the current session.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}
	writeJSON(w, http.StatusOK, session)
}
