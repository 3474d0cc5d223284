package domain

import (
	"context"
	"time"
)

// PreferenceSet holds a user's chosen news categories. One set per user,
// created lazily on first save.
type PreferenceSet struct {
	UserID      string    `json:"user_id"`
	Categories  []string  `json:"categories"`
	LastUpdated time.Time `json:"last_updated"`
}

// PreferenceRepository reads and writes preference sets through the
// configured storage collaborator (remote document store or local fallback).
// Calls honor the context so a stalled collaborator cannot block the caller
// past its deadline.
type PreferenceRepository interface {
	// Get returns nil, nil when the user has never saved preferences.
	Get(ctx context.Context, userID string) (*PreferenceSet, error)
	// Upsert merges the set into the stored record, preserving fields not
	// managed here.
	Upsert(ctx context.Context, prefs *PreferenceSet) error
}

// PreferenceService exposes preference operations to the handler layer.
type PreferenceService interface {
	// Load returns nil, nil when the user has never saved preferences and a
	// persistence error when the store cannot be reached; the two outcomes
	// are user-visibly distinct.
	Load(ctx context.Context, userID string) (*PreferenceSet, error)
	Save(ctx context.Context, userID string, categories []string) (*PreferenceSet, error)
	Categories() []string
}
