package service

import (
	"context"
	"time"

	"news-dashboard/internal/domain"
	apperrors "news-dashboard/pkg/errors"
)

// The fixed category list users pick preferences from.
var newsCategories = []string{
	"Technology",
	"Science",
	"Health",
	"Business",
	"Sports",
	"Entertainment",
	"Politics",
}

type preferenceService struct {
	preferenceRepo domain.PreferenceRepository
	timeout        time.Duration
	logger         domain.Logger
}

// NewPreferenceService creates the preference store service. Repository
// calls run under the configured timeout so a stalled store surfaces as a
// persistence error instead of hanging the caller.
func NewPreferenceService(preferenceRepo domain.PreferenceRepository, timeout time.Duration, logger domain.Logger) domain.PreferenceService {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		timeout:        timeout,
		logger:         logger,
	}
}

// Categories returns the valid category list in display order.
func (s *preferenceService) Categories() []string {
	return append([]string(nil), newsCategories...)
}

// Load returns the user's preference set, nil when never saved. Storage
// failures surface as persistence errors: "no preferences yet" and
// "couldn't check" are different user-visible states.
func (s *preferenceService) Load(ctx context.Context, userID string) (*domain.PreferenceSet, error) {
	if userID == "" {
		return nil, apperrors.NewAuthRequiredError("Sign in required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	prefs, err := s.preferenceRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load preferences", err, "user_id", userID)
		return nil, apperrors.NewPersistenceError("Failed to load preferences", err)
	}
	return prefs, nil
}

// Save validates the categories and merge-upserts the set with a fresh
// last-updated timestamp.
func (s *preferenceService) Save(ctx context.Context, userID string, categories []string) (*domain.PreferenceSet, error) {
	if userID == "" {
		return nil, apperrors.NewAuthRequiredError("Sign in required")
	}
	cleaned := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		if !validCategory(category) {
			return nil, apperrors.NewValidationError("Unknown category", category)
		}
		if !seen[category] {
			seen[category] = true
			cleaned = append(cleaned, category)
		}
	}

	prefs := &domain.PreferenceSet{
		UserID:      userID,
		Categories:  cleaned,
		LastUpdated: time.Now(),
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.preferenceRepo.Upsert(ctx, prefs); err != nil {
		s.logger.Error("Failed to save preferences", err, "user_id", userID)
		return nil, apperrors.NewPersistenceError("Failed to save preferences", err)
	}
	return prefs, nil
}

// Toggle returns the category set with the category added if absent and
// removed if present. Pure; no I/O.
func Toggle(categories []string, category string) []string {
	updated := make([]string, 0, len(categories)+1)
	removed := false
	for _, c := range categories {
		if c == category {
			removed = true
			continue
		}
		updated = append(updated, c)
	}
	if !removed {
		updated = append(updated, category)
	}
	return updated
}

func validCategory(category string) bool {
	for _, c := range newsCategories {
		if c == category {
			return true
		}
	}
	return false
}
