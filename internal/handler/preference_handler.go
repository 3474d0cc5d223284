package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"news-dashboard/internal/domain"
)

// PreferenceHandler handles preference-related HTTP requests
type PreferenceHandler struct {
	preferences domain.PreferenceService
	logger      domain.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences domain.PreferenceService, logger domain.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		preferences: preferences,
		logger:      logger,
	}
}

type preferencesResponse struct {
	UserID      string    `json:"user_id"`
	Saved       bool      `json:"saved"`
	Categories  []string  `json:"categories"`
	Available   []string  `json:"available_categories"`
	LastUpdated time.Time `json:"last_updated,omitempty"`
}

// GetPreferences returns the user's preference set. A user who has never
// saved gets an explicit unsaved response, distinct from a storage failure.
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	prefs, err := h.preferences.Load(r.Context(), session.UserID)
	if err != nil {
		h.logger.Error("Failed to get preferences", err, "user_id", session.UserID)
		writeAppError(w, err)
		return
	}

	resp := preferencesResponse{
		UserID:     session.UserID,
		Saved:      prefs != nil,
		Categories: []string{},
		Available:  h.preferences.Categories(),
	}
	if prefs != nil {
		resp.Categories = prefs.Categories
		resp.LastUpdated = prefs.LastUpdated
	}
	writeJSON(w, http.StatusOK, resp)
}

type updatePreferencesRequest struct {
	Categories []string `json:"categories"`
}

// UpdatePreferences saves the user's chosen categories.
func (h *PreferenceHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prefs, err := h.preferences.Save(r.Context(), session.UserID, req.Categories)
	if err != nil {
		h.logger.Error("Failed to save preferences", err, "user_id", session.UserID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}
