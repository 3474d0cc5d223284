package repository

import (
	"context"
	"fmt"

	"news-dashboard/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient implements the domain.DocumentStoreClient interface
type SupabaseClient struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance
func NewSupabaseClient(config domain.Config, logger domain.Logger) domain.DocumentStoreClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Enabled reports whether a document store is configured.
func (s *SupabaseClient) Enabled() bool {
	return s.config.GetSupabaseURL() != "" && s.config.GetSupabaseKey() != ""
}

// DB returns the underlying client, nil before Initialize.
func (s *SupabaseClient) DB() *supabase.Client {
	return s.client
}

// Initialize establishes a connection to Supabase
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

type executeResult struct {
	data []byte
	err  error
}

// executeBounded runs a postgrest execute call under the context deadline.
// The client library has no context-aware execution and no reachable
// http.Client timeout, so the call runs in a goroutine and the caller
// returns as soon as the deadline passes.
func executeBounded(ctx context.Context, run func() ([]byte, int64, error)) ([]byte, error) {
	done := make(chan executeResult, 1)
	go func() {
		data, _, err := run()
		done <- executeResult{data: data, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}
