package domain

import (
	"context"
	"time"
)

// Article is a normalized article record from any of the remote sources.
// Articles are transient: fetched fresh per request, never persisted except
// as snapshots inside engagement events.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category,omitempty"`
	Score       float64   `json:"score,omitempty"`
	TimeAgo     string    `json:"time_ago,omitempty"`
}

// ArticleSearcher is the article-search collaborator behind the Popular tab.
type ArticleSearcher interface {
	TrendingArticles(ctx context.Context) ([]Article, error)
}

// Recommender is the recommendation collaborator behind the
// Recommendations tab. Articles carry a recommendation score.
type Recommender interface {
	RecommendedArticles(ctx context.Context) ([]Article, error)
}
