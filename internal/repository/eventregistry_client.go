package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"news-dashboard/internal/domain"
)

// EventRegistryClient implements domain.ArticleSearcher against the Event
// Registry article-search API.
type EventRegistryClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     domain.Logger
}

// NewEventRegistryClient creates a new article-search client
func NewEventRegistryClient(config domain.Config, logger domain.Logger) domain.ArticleSearcher {
	return &EventRegistryClient{
		url:        config.GetEventRegistryURL(),
		apiKey:     config.GetEventRegistryAPIKey(),
		httpClient: &http.Client{Timeout: config.GetRequestTimeout()},
		logger:     logger,
	}
}

// searchPayload is the fixed query for the Popular feed: keyword-less,
// English-language, recent window, paywalled sources excluded.
type searchPayload struct {
	Action                   string   `json:"action"`
	Keyword                  string   `json:"keyword"`
	SourceLocationURI        []string `json:"sourceLocationUri"`
	IgnoreSourceGroupURI     string   `json:"ignoreSourceGroupUri"`
	ArticlesPage             int      `json:"articlesPage"`
	ArticlesCount            int      `json:"articlesCount"`
	ArticlesIncludeConcepts  bool     `json:"articlesIncludeConcepts"`
	IncludeArticleCategories bool     `json:"includeArticleCategories"`
	ArticlesSortBy           string   `json:"articlesSortBy"`
	ArticlesSortByAsc        bool     `json:"articlesSortByAsc"`
	DataType                 []string `json:"dataType"`
	ForceMaxDataTimeWindow   int      `json:"forceMaxDataTimeWindow"`
	ResultType               string   `json:"resultType"`
	Lang                     []string `json:"lang"`
	APIKey                   string   `json:"apiKey"`
}

type searchResponse struct {
	Articles struct {
		Results []searchArticle `json:"results"`
	} `json:"articles"`
}

type searchLabel struct {
	Eng string `json:"eng"`
}

type searchArticle struct {
	URI      string `json:"uri"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	DateTime string `json:"dateTime"`
	Source   struct {
		Title string `json:"title"`
	} `json:"source"`
	Categories []struct {
		Label searchLabel `json:"label"`
		Score float64     `json:"score"`
	} `json:"categories"`
	Concepts []struct {
		Label searchLabel `json:"label"`
	} `json:"concepts"`
}

// TrendingArticles posts the fixed search payload and normalizes the results.
func (c *EventRegistryClient) TrendingArticles(ctx context.Context) ([]domain.Article, error) {
	payload := searchPayload{
		Action:  "getArticles",
		Keyword: "",
		SourceLocationURI: []string{
			"http://en.wikipedia.org/wiki/United_States",
			"http://en.wikipedia.org/wiki/Canada",
			"http://en.wikipedia.org/wiki/United_Kingdom",
		},
		IgnoreSourceGroupURI:     "paywall/paywalled_sources",
		ArticlesPage:             1,
		ArticlesCount:            20,
		ArticlesIncludeConcepts:  true,
		IncludeArticleCategories: true,
		ArticlesSortBy:           "date",
		ArticlesSortByAsc:        false,
		DataType:                 []string{"news", "pr"},
		ForceMaxDataTimeWindow:   31,
		ResultType:               "articles",
		Lang:                     []string{"eng"},
		APIKey:                   c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching trending articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	articles := make([]domain.Article, 0, len(result.Articles.Results))
	for _, a := range result.Articles.Results {
		articles = append(articles, domain.Article{
			ID:          a.URI,
			Title:       a.Title,
			Summary:     a.Body,
			URL:         a.URL,
			ImageURL:    a.Image,
			SourceName:  a.Source.Title,
			PublishedAt: parseArticleTime(a.DateTime),
			Category:    categoryOf(a),
		})
	}
	return articles, nil
}

// categoryOf picks the highest-score category label. Concepts are consulted
// only when the article carries no categories at all; a category list whose
// top entry lacks an English label yields "General" directly.
func categoryOf(a searchArticle) string {
	if len(a.Categories) > 0 {
		top := a.Categories[0]
		for _, c := range a.Categories[1:] {
			if c.Score > top.Score {
				top = c
			}
		}
		if top.Label.Eng != "" {
			return top.Label.Eng
		}
		return "General"
	}
	if len(a.Concepts) > 0 && a.Concepts[0].Label.Eng != "" {
		return a.Concepts[0].Label.Eng
	}
	return "General"
}

func parseArticleTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
