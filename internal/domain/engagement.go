package domain

import (
	"context"
	"time"
)

// EngagementKind discriminates like and read events.
type EngagementKind string

const (
	EngagementLike EngagementKind = "like"
	EngagementRead EngagementKind = "read"
)

// ArticleSnapshot carries the article fields kept for display alongside an
// engagement event.
type ArticleSnapshot struct {
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	URL        string `json:"url"`
	SourceName string `json:"source_name,omitempty"`
	Category   string `json:"category,omitempty"`
}

// EngagementEvent is a write-once record of a user liking or reading an
// article. The core only constructs and transmits it.
type EngagementEvent struct {
	UserID    string          `json:"user_id"`
	ArticleID string          `json:"article_id"`
	Kind      EngagementKind  `json:"kind"`
	Snapshot  ArticleSnapshot `json:"snapshot"`
	Timestamp time.Time       `json:"timestamp"`
}

// EngagementRepository appends events to the document store and lists a
// user's read history for the Latest tab. Calls honor the context deadline.
type EngagementRepository interface {
	AppendLike(ctx context.Context, event *EngagementEvent) error
	AppendRead(ctx context.Context, event *EngagementEvent) error
	// ListReads returns the user's read events ordered newest-first.
	ListReads(ctx context.Context, userID string) ([]EngagementEvent, error)
}

// EngagementSender transmits events to the remote engagement collaborator.
type EngagementSender interface {
	Send(ctx context.Context, event *EngagementEvent) error
}

// EngagementService records likes and reads fire-and-forget: failures are
// logged and never surfaced, and calls without a user are silent no-ops.
type EngagementService interface {
	LogLike(userID string, article Article)
	LogRead(userID string, article Article)
}
