package config

import (
	"os"
	"strconv"
	"time"

	"news-dashboard/internal/domain"
)

// Default endpoints for the news collaborators. The engagement and
// recommender services historically ran on localhost:5000; both are
// configurable so deployments can point them elsewhere.
const (
	defaultEventRegistryURL = "https://eventregistry.org/api/v1/article/getArticles"
	defaultEngagementURL    = "http://localhost:5000"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort          string
	LogLevel            string
	SupabaseURL         string
	SupabaseKey         string
	EventRegistryURL    string
	EventRegistryAPIKey string
	RecommenderURL      string
	EngagementURL       string
	DataDir             string
	RequestTimeout      time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:         getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:         getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		EventRegistryURL:    getEnvOrDefault("EVENT_REGISTRY_URL", defaultEventRegistryURL),
		EventRegistryAPIKey: getEnvOrDefault("EVENT_REGISTRY_API_KEY", ""),
		RecommenderURL:      getEnvOrDefault("RECOMMENDER_URL", ""),
		EngagementURL:       getEnvOrDefault("ENGAGEMENT_URL", defaultEngagementURL),
		DataDir:             getEnvOrDefault("DATA_DIR", "./data"),
		RequestTimeout:      time.Duration(getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetEventRegistryURL returns the article-search endpoint
func (c *AppConfig) GetEventRegistryURL() string {
	return c.EventRegistryURL
}

// GetEventRegistryAPIKey returns the article-search API key
func (c *AppConfig) GetEventRegistryAPIKey() string {
	return c.EventRegistryAPIKey
}

// GetRecommenderURL returns the recommendation endpoint; empty means the
// bundled sample document is served instead
func (c *AppConfig) GetRecommenderURL() string {
	return c.RecommenderURL
}

// GetEngagementURL returns the engagement collaborator base URL
func (c *AppConfig) GetEngagementURL() string {
	return c.EngagementURL
}

// GetDataDir returns the directory for locally persisted records
func (c *AppConfig) GetDataDir() string {
	return c.DataDir
}

// GetRequestTimeout returns the per-call timeout for external requests
func (c *AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
