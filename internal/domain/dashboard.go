package domain

import "context"

// DashboardService coordinates per-user dashboards: which tab is active,
// which fetch is current, and what each tab currently shows.
type DashboardService interface {
	// Show activates the tab, runs its fetcher and returns the active tab's
	// state. A result belonging to a superseded fetch is discarded.
	Show(ctx context.Context, userID string, tab Tab) (Tab, FeedState, error)
	// Refresh re-runs the active tab's fetcher, replacing its state.
	Refresh(ctx context.Context, userID string) (Tab, FeedState)
	// State returns the active tab and its current state without fetching.
	State(userID string) (Tab, FeedState)
	// Drop discards a user's dashboard, typically on logout.
	Drop(userID string)
}
