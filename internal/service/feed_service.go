package service

import (
	"context"
	"fmt"
	"time"

	"news-dashboard/internal/domain"
)

type feedService struct {
	searcher       domain.ArticleSearcher
	recommender    domain.Recommender
	engagementRepo domain.EngagementRepository
	timeout        time.Duration
	logger         domain.Logger
}

// NewFeedService creates the feed fetchers behind one contract. Every fetch
// runs under the configured timeout so a stalled collaborator becomes an
// error state instead of an indefinite loading state.
func NewFeedService(
	searcher domain.ArticleSearcher,
	recommender domain.Recommender,
	engagementRepo domain.EngagementRepository,
	timeout time.Duration,
	logger domain.Logger,
) domain.FeedService {
	return &feedService{
		searcher:       searcher,
		recommender:    recommender,
		engagementRepo: engagementRepo,
		timeout:        timeout,
		logger:         logger,
	}
}

// Fetch retrieves the tab's articles, terminating with a ready or error
// state. An empty result set is a ready state with an empty list.
func (s *feedService) Fetch(ctx context.Context, tab domain.Tab, userID string) domain.FeedState {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		articles []domain.Article
		err      error
	)
	switch tab {
	case domain.TabPopular:
		articles, err = s.searcher.TrendingArticles(ctx)
	case domain.TabRecommendations:
		articles, err = s.recommender.RecommendedArticles(ctx)
	case domain.TabLatest:
		articles, err = s.latestReads(ctx, userID)
	default:
		err = fmt.Errorf("unknown tab %q", tab)
	}

	if err != nil {
		s.logger.Error("Feed fetch failed", err, "tab", tab)
		return domain.FeedState{Status: domain.FeedError, ErrorMessage: err.Error()}
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return domain.FeedState{Status: domain.FeedReady, Articles: articles}
}

// latestReads maps the user's read history, newest-first, into display
// articles with a relative time string.
func (s *feedService) latestReads(ctx context.Context, userID string) ([]domain.Article, error) {
	if userID == "" {
		return nil, fmt.Errorf("sign in required to view read history")
	}
	events, err := s.engagementRepo.ListReads(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	articles := make([]domain.Article, 0, len(events))
	for _, event := range events {
		articles = append(articles, domain.Article{
			ID:          event.ArticleID,
			Title:       event.Snapshot.Title,
			Summary:     event.Snapshot.Summary,
			URL:         event.Snapshot.URL,
			SourceName:  event.Snapshot.SourceName,
			Category:    event.Snapshot.Category,
			PublishedAt: event.Timestamp,
			TimeAgo:     TimeAgo(event.Timestamp, now),
		})
	}
	return articles, nil
}

// TimeAgo formats a relative display string: seconds, minutes, hours and
// days, with a plain date beyond 7 days.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d <= 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
