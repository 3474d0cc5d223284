package repository

import "time"

// Mock logger used by repository package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// Test configuration with overridable endpoints.
type testConfig struct {
	supabaseURL      string
	eventRegistryURL string
	recommenderURL   string
	engagementURL    string
	dataDir          string
}

func (c *testConfig) GetServerPort() string  { return "8080" }
func (c *testConfig) GetLogLevel() string    { return "error" }
func (c *testConfig) GetSupabaseURL() string { return c.supabaseURL }
func (c *testConfig) GetSupabaseKey() string {
	if c.supabaseURL == "" {
		return ""
	}
	return "test-anon-key"
}
func (c *testConfig) GetEventRegistryURL() string      { return c.eventRegistryURL }
func (c *testConfig) GetEventRegistryAPIKey() string   { return "test-api-key" }
func (c *testConfig) GetRecommenderURL() string        { return c.recommenderURL }
func (c *testConfig) GetEngagementURL() string         { return c.engagementURL }
func (c *testConfig) GetDataDir() string               { return c.dataDir }
func (c *testConfig) GetRequestTimeout() time.Duration { return 2 * time.Second }
