package service

import (
	"context"
	"sync"

	"news-dashboard/internal/domain"
	apperrors "news-dashboard/pkg/errors"
)

// FetchTag identifies one in-flight fetch: the tab it belongs to and that
// tab's fetch generation at the time it started. Stale results are
// discarded by tag, not by aborting the underlying request.
type FetchTag struct {
	Tab        domain.Tab
	generation uint64
}

// Dashboard is the per-user tab state machine. Selecting a tab always
// begins a fresh fetch, which covers the recommendations "switch away and
// back" refresh semantics.
type Dashboard struct {
	mu          sync.Mutex
	activeTab   domain.Tab
	generations map[domain.Tab]uint64
	states      map[domain.Tab]domain.FeedState
}

// NewDashboard creates a dashboard with popular as the initial tab.
func NewDashboard() *Dashboard {
	return &Dashboard{
		activeTab:   domain.TabPopular,
		generations: make(map[domain.Tab]uint64),
		states:      make(map[domain.Tab]domain.FeedState),
	}
}

// Activate sets the active tab, marks it loading and returns the tag for
// the fetch that now owns it.
func (d *Dashboard) Activate(tab domain.Tab) (FetchTag, error) {
	if !domain.ValidTab(tab) {
		return FetchTag{}, apperrors.NewValidationError("Unknown tab", string(tab))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activeTab = tab
	return d.beginLocked(tab), nil
}

// BeginRefresh marks the active tab loading and returns the owning tag.
func (d *Dashboard) BeginRefresh() FetchTag {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.beginLocked(d.activeTab)
}

func (d *Dashboard) beginLocked(tab domain.Tab) FetchTag {
	d.generations[tab]++
	d.states[tab] = domain.FeedState{Status: domain.FeedLoading}
	return FetchTag{Tab: tab, generation: d.generations[tab]}
}

// Complete applies a fetch result and reports whether it was applied. A
// result is discarded when a newer fetch owns its tab or the tab is no
// longer active.
func (d *Dashboard) Complete(tag FetchTag, state domain.FeedState) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generations[tag.Tab] != tag.generation || d.activeTab != tag.Tab {
		return false
	}
	d.states[tag.Tab] = state
	return true
}

// State returns the active tab and its current feed state.
func (d *Dashboard) State() (domain.Tab, domain.FeedState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, ok := d.states[d.activeTab]
	if !ok {
		state = domain.FeedState{Status: domain.FeedLoading}
	}
	return d.activeTab, state
}

// StateOf returns one tab's current feed state.
func (d *Dashboard) StateOf(tab domain.Tab) domain.FeedState {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, ok := d.states[tab]
	if !ok {
		state = domain.FeedState{Status: domain.FeedLoading}
	}
	return state
}

type dashboardService struct {
	mu     sync.Mutex
	boards map[string]*Dashboard
	feeds  domain.FeedService
	logger domain.Logger
}

// NewDashboardService creates the per-user dashboard coordinator.
func NewDashboardService(feeds domain.FeedService, logger domain.Logger) domain.DashboardService {
	return &dashboardService{
		boards: make(map[string]*Dashboard),
		feeds:  feeds,
		logger: logger,
	}
}

func (s *dashboardService) board(userID string) *Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, ok := s.boards[userID]
	if !ok {
		board = NewDashboard()
		s.boards[userID] = board
	}
	return board
}

// Show activates the tab, runs its fetcher and returns the active state.
func (s *dashboardService) Show(ctx context.Context, userID string, tab domain.Tab) (domain.Tab, domain.FeedState, error) {
	board := s.board(userID)
	tag, err := board.Activate(tab)
	if err != nil {
		active, state := board.State()
		return active, state, err
	}

	state := s.feeds.Fetch(ctx, tab, userID)
	if !board.Complete(tag, state) {
		s.logger.Debug("Discarded stale fetch result", "tab", tab, "user_id", userID)
	}
	active, current := board.State()
	return active, current, nil
}

// Refresh re-runs the active tab's fetcher, replacing its state.
func (s *dashboardService) Refresh(ctx context.Context, userID string) (domain.Tab, domain.FeedState) {
	board := s.board(userID)
	tag := board.BeginRefresh()

	state := s.feeds.Fetch(ctx, tag.Tab, userID)
	if !board.Complete(tag, state) {
		s.logger.Debug("Discarded stale fetch result", "tab", tag.Tab, "user_id", userID)
	}
	return board.State()
}

// State returns the active tab and its current state without fetching.
func (s *dashboardService) State(userID string) (domain.Tab, domain.FeedState) {
	return s.board(userID).State()
}

// Drop discards the user's dashboard.
func (s *dashboardService) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, userID)
}
