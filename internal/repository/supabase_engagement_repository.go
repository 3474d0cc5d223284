package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"news-dashboard/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// SupabaseEngagementRepository implements domain.EngagementRepository on the
// user_likes and user_reads tables.
type SupabaseEngagementRepository struct {
	documentStore domain.DocumentStoreClient
	logger        domain.Logger
}

// NewSupabaseEngagementRepository creates a new Supabase engagement repository
func NewSupabaseEngagementRepository(documentStore domain.DocumentStoreClient, logger domain.Logger) domain.EngagementRepository {
	return &SupabaseEngagementRepository{
		documentStore: documentStore,
		logger:        logger,
	}
}

type engagementRow struct {
	UserID     string    `json:"user_id"`
	ArticleID  string    `json:"article_id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	URL        string    `json:"url"`
	SourceName string    `json:"source_name"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
}

// AppendLike inserts a like event.
func (r *SupabaseEngagementRepository) AppendLike(ctx context.Context, event *domain.EngagementEvent) error {
	return r.append(ctx, "user_likes", event)
}

// AppendRead inserts a read event.
func (r *SupabaseEngagementRepository) AppendRead(ctx context.Context, event *domain.EngagementEvent) error {
	return r.append(ctx, "user_reads", event)
}

func (r *SupabaseEngagementRepository) append(ctx context.Context, table string, event *domain.EngagementEvent) error {
	client := r.documentStore.DB()
	if client == nil {
		return fmt.Errorf("document store client not initialized")
	}

	row := map[string]interface{}{
		"user_id":     event.UserID,
		"article_id":  event.ArticleID,
		"title":       event.Snapshot.Title,
		"summary":     event.Snapshot.Summary,
		"url":         event.Snapshot.URL,
		"source_name": event.Snapshot.SourceName,
		"category":    event.Snapshot.Category,
		"created_at":  event.Timestamp,
	}

	query := client.From(table).Insert(row, false, "", "", "")
	if _, err := executeBounded(ctx, query.Execute); err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.Kind, err)
	}
	return nil
}

// ListReads returns the user's read events ordered newest-first.
func (r *SupabaseEngagementRepository) ListReads(ctx context.Context, userID string) ([]domain.EngagementEvent, error) {
	client := r.documentStore.DB()
	if client == nil {
		return nil, fmt.Errorf("document store client not initialized")
	}

	query := client.From("user_reads").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	data, err := executeBounded(ctx, query.Execute)
	if err != nil {
		return nil, fmt.Errorf("failed to list reads: %w", err)
	}

	var rows []engagementRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	events := make([]domain.EngagementEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.EngagementEvent{
			UserID:    row.UserID,
			ArticleID: row.ArticleID,
			Kind:      domain.EngagementRead,
			Snapshot: domain.ArticleSnapshot{
				Title:      row.Title,
				Summary:    row.Summary,
				URL:        row.URL,
				SourceName: row.SourceName,
				Category:   row.Category,
			},
			Timestamp: row.CreatedAt,
		})
	}
	return events, nil
}
