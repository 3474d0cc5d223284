package handler

import (
	"encoding/json"
	"net/http"

	"news-dashboard/internal/domain"
)

// EngagementHandler handles like and read event requests
type EngagementHandler struct {
	engagement domain.EngagementService
	logger     domain.Logger
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagement domain.EngagementService, logger domain.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagement: engagement,
		logger:     logger,
	}
}

// LogLike records a like event; accepted regardless of downstream outcome.
func (h *EngagementHandler) LogLike(w http.ResponseWriter, r *http.Request) {
	h.log(w, r, domain.EngagementLike)
}

// LogRead records a read event; accepted regardless of downstream outcome.
func (h *EngagementHandler) LogRead(w http.ResponseWriter, r *http.Request) {
	h.log(w, r, domain.EngagementRead)
}

func (h *EngagementHandler) log(w http.ResponseWriter, r *http.Request, kind domain.EngagementKind) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if article.ID == "" {
		writeError(w, http.StatusBadRequest, "Article ID is required")
		return
	}

	switch kind {
	case domain.EngagementLike:
		h.engagement.LogLike(session.UserID, article)
	case domain.EngagementRead:
		h.engagement.LogRead(session.UserID, article)
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
