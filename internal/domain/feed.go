package domain

import "context"

// Tab identifies one of the dashboard's feeds.
type Tab string

const (
	TabPopular         Tab = "popular"
	TabRecommendations Tab = "recommendations"
	TabLatest          Tab = "latest"
)

// Tabs returns the dashboard's tabs in display order.
func Tabs() []Tab {
	return []Tab{TabRecommendations, TabPopular, TabLatest}
}

// ValidTab reports whether t names a known tab.
func ValidTab(t Tab) bool {
	switch t {
	case TabPopular, TabRecommendations, TabLatest:
		return true
	}
	return false
}

// FeedStatus is the tri-state outcome of fetching one tab's article list.
type FeedStatus string

const (
	FeedLoading FeedStatus = "loading"
	FeedError   FeedStatus = "error"
	FeedReady   FeedStatus = "ready"
)

// FeedState holds one tab's fetch outcome. A ready state with an empty
// article list is the explicit no-data state, distinct from error and from
// loading; the three are mutually exclusive and exhaustive.
type FeedState struct {
	Status       FeedStatus `json:"status"`
	Articles     []Article  `json:"articles"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// Empty reports the explicit no-data state.
func (s FeedState) Empty() bool {
	return s.Status == FeedReady && len(s.Articles) == 0
}

// FeedService fetches one tab's articles, always terminating with a ready
// or error state within the configured timeout.
type FeedService interface {
	Fetch(ctx context.Context, tab Tab, userID string) FeedState
}
