package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"news-dashboard/internal/domain"
)

// Static fallback data source used when no recommender is configured.
//
//go:embed sample_recommendations.json
var sampleRecommendations []byte

// RecommenderClient implements domain.Recommender against the
// recommendation collaborator's HTTP endpoint.
type RecommenderClient struct {
	url        string
	httpClient *http.Client
	logger     domain.Logger
}

// NewRecommenderClient creates a new recommendation client
func NewRecommenderClient(config domain.Config, logger domain.Logger) domain.Recommender {
	return &RecommenderClient{
		url:        config.GetRecommenderURL(),
		httpClient: &http.Client{Timeout: config.GetRequestTimeout()},
		logger:     logger,
	}
}

type recommendedArticle struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	URLToImage  string      `json:"urlToImage"`
	Source      string      `json:"source"`
	PublishedAt string      `json:"publishedAt"`
	Category    string      `json:"category"`
	Score       float64     `json:"recommendation_score"`
}

// RecommendedArticles retrieves the pre-scored article list. With no
// endpoint configured the bundled sample document is served instead.
func (c *RecommenderClient) RecommendedArticles(ctx context.Context) ([]domain.Article, error) {
	if c.url == "" {
		c.logger.Debug("Recommender not configured, serving sample document")
		return parseRecommendations(sampleRecommendations)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building recommendations request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommender returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}
	return parseRecommendations(raw)
}

func parseRecommendations(data []byte) ([]domain.Article, error) {
	var recs []recommendedArticle
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}

	articles := make([]domain.Article, 0, len(recs))
	for _, rec := range recs {
		articles = append(articles, domain.Article{
			ID:          rec.ID.String(),
			Title:       rec.Title,
			Summary:     rec.Description,
			URL:         rec.URL,
			ImageURL:    rec.URLToImage,
			SourceName:  rec.Source,
			PublishedAt: parseArticleTime(rec.PublishedAt),
			Category:    rec.Category,
			Score:       rec.Score,
		})
	}
	return articles, nil
}
