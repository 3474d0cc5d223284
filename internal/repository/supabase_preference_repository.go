package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"news-dashboard/internal/domain"
)

// SupabasePreferenceRepository implements domain.PreferenceRepository on the
// user_preferences table.
type SupabasePreferenceRepository struct {
	documentStore domain.DocumentStoreClient
	logger        domain.Logger
}

// NewSupabasePreferenceRepository creates a new Supabase preference repository
func NewSupabasePreferenceRepository(documentStore domain.DocumentStoreClient, logger domain.Logger) domain.PreferenceRepository {
	return &SupabasePreferenceRepository{
		documentStore: documentStore,
		logger:        logger,
	}
}

type preferenceRow struct {
	UserID      string    `json:"user_id"`
	Categories  []string  `json:"categories"`
	LastUpdated time.Time `json:"last_updated"`
}

// Get retrieves a user's preference set, nil when never saved.
func (r *SupabasePreferenceRepository) Get(ctx context.Context, userID string) (*domain.PreferenceSet, error) {
	client := r.documentStore.DB()
	if client == nil {
		return nil, fmt.Errorf("document store client not initialized")
	}

	query := client.From("user_preferences").
		Select("*", "", false).
		Eq("user_id", userID)
	data, err := executeBounded(ctx, query.Execute)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var rows []preferenceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &domain.PreferenceSet{
		UserID:      rows[0].UserID,
		Categories:  rows[0].Categories,
		LastUpdated: rows[0].LastUpdated,
	}, nil
}

// Upsert merges the preference set into the stored record. Columns not
// listed here are preserved by the upsert.
func (r *SupabasePreferenceRepository) Upsert(ctx context.Context, prefs *domain.PreferenceSet) error {
	client := r.documentStore.DB()
	if client == nil {
		return fmt.Errorf("document store client not initialized")
	}

	row := map[string]interface{}{
		"user_id":      prefs.UserID,
		"categories":   prefs.Categories,
		"last_updated": prefs.LastUpdated,
	}

	query := client.From("user_preferences").Upsert(row, "", "", "")
	if _, err := executeBounded(ctx, query.Execute); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	r.logger.Info("Preferences updated successfully", "user_id", prefs.UserID)
	return nil
}
