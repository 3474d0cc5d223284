package domain

import (
	"time"

	"github.com/supabase-community/supabase-go"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetEventRegistryURL() string
	GetEventRegistryAPIKey() string
	GetRecommenderURL() string
	GetEngagementURL() string
	GetDataDir() string
	GetRequestTimeout() time.Duration
}

// DocumentStoreClient wraps the hosted document-store collaborator.
type DocumentStoreClient interface {
	Initialize() error
	// Enabled reports whether a remote store is configured; when false the
	// local fallback records are used instead.
	Enabled() bool
	DB() *supabase.Client
}
