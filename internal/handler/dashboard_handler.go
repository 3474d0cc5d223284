package handler

import (
	"encoding/json"
	"net/http"

	"news-dashboard/internal/domain"

	"github.com/gorilla/mux"
)

// DashboardHandler handles dashboard and feed HTTP requests
type DashboardHandler struct {
	dashboards domain.DashboardService
	feeds      domain.FeedService
	logger     domain.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboards domain.DashboardService, feeds domain.FeedService, logger domain.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		feeds:      feeds,
		logger:     logger,
	}
}

type dashboardResponse struct {
	ActiveTab domain.Tab       `json:"active_tab"`
	Tabs      []domain.Tab     `json:"tabs"`
	Feed      domain.FeedState `json:"feed"`
}

// GetDashboard returns the active tab and its current feed state.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	tab, state := h.dashboards.State(session.UserID)
	writeJSON(w, http.StatusOK, dashboardResponse{ActiveTab: tab, Tabs: domain.Tabs(), Feed: state})
}

type selectTabRequest struct {
	Tab domain.Tab `json:"tab"`
}

// SelectTab switches the active tab and fetches its feed.
func (h *DashboardHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var req selectTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tab, state, err := h.dashboards.Show(r.Context(), session.UserID, req.Tab)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{ActiveTab: tab, Tabs: domain.Tabs(), Feed: state})
}

// Refresh re-runs the active tab's fetcher, replacing its state.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	tab, state := h.dashboards.Refresh(r.Context(), session.UserID)
	writeJSON(w, http.StatusOK, dashboardResponse{ActiveTab: tab, Tabs: domain.Tabs(), Feed: state})
}

// GetFeed fetches one tab's articles directly without changing the active
// tab. A retry from the UI re-issues the identical request here.
func (h *DashboardHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	tab := domain.Tab(mux.Vars(r)["tab"])
	if !domain.ValidTab(tab) {
		writeError(w, http.StatusBadRequest, "Unknown tab")
		return
	}

	state := h.feeds.Fetch(r.Context(), tab, session.UserID)
	writeJSON(w, http.StatusOK, state)
}
