package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"news-dashboard/internal/domain"
)

// EngagementClient implements domain.EngagementSender against the
// engagement collaborator. One configurable base URL serves both the
// log-like and log-history endpoints.
type EngagementClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewEngagementClient creates a new engagement client
func NewEngagementClient(config domain.Config, logger domain.Logger) domain.EngagementSender {
	return &EngagementClient{
		baseURL:    strings.TrimRight(config.GetEngagementURL(), "/"),
		httpClient: &http.Client{Timeout: config.GetRequestTimeout()},
		logger:     logger,
	}
}

// Send posts the event; the response body is ignored beyond success/failure.
func (c *EngagementClient) Send(ctx context.Context, event *domain.EngagementEvent) error {
	endpoint := c.baseURL + "/api/log-like"
	if event.Kind == domain.EngagementRead {
		endpoint = c.baseURL + "/api/log-history"
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding engagement event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building engagement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending engagement event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("engagement endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
