package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"news-dashboard/internal/domain"
)

type MockFeedService struct {
	states map[domain.Tab]domain.FeedState
	calls  []domain.Tab
}

func NewMockFeedService() *MockFeedService {
	return &MockFeedService{
		states: make(map[domain.Tab]domain.FeedState),
	}
}

func (m *MockFeedService) Fetch(ctx context.Context, tab domain.Tab, userID string) domain.FeedState {
	m.calls = append(m.calls, tab)
	if state, ok := m.states[tab]; ok {
		return state
	}
	return domain.FeedState{Status: domain.FeedReady, Articles: []domain.Article{}}
}

func TestDashboardHandler_GetDashboard_OK(t *testing.T) {
	handler := NewDashboardHandler(NewMockDashboardService(), NewMockFeedService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()
	handler.GetDashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ActiveTab != domain.TabPopular {
		t.Fatalf("expected popular tab, got %s", resp.ActiveTab)
	}
	if len(resp.Tabs) != 3 {
		t.Fatalf("expected 3 tabs, got %v", resp.Tabs)
	}
	if resp.Tabs[0] != domain.TabRecommendations {
		t.Fatalf("expected recommendations listed first, got %v", resp.Tabs)
	}
}

func TestDashboardHandler_SelectTab_OK(t *testing.T) {
	dashboards := NewMockDashboardService()
	handler := NewDashboardHandler(dashboards, NewMockFeedService(), NewMockHandlerLogger())

	body := strings.NewReader(`{"tab":"latest"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/tab", body)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()
	handler.SelectTab(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ActiveTab != domain.TabLatest {
		t.Fatalf("expected latest tab, got %s", resp.ActiveTab)
	}
	if dashboards.activeTabs["alice"] != domain.TabLatest {
		t.Fatalf("expected tab switch recorded, got %v", dashboards.activeTabs)
	}
}

func TestDashboardHandler_SelectTab_InvalidBody(t *testing.T) {
	handler := NewDashboardHandler(NewMockDashboardService(), NewMockFeedService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/tab", strings.NewReader("not json"))
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()
	handler.SelectTab(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestDashboardHandler_Refresh_OK(t *testing.T) {
	dashboards := NewMockDashboardService()
	handler := NewDashboardHandler(dashboards, NewMockFeedService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/refresh", nil)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()
	handler.Refresh(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if dashboards.refreshed != 1 {
		t.Fatalf("expected 1 refresh, got %d", dashboards.refreshed)
	}
}

func TestDashboardHandler_GetFeed_OK(t *testing.T) {
	feeds := NewMockFeedService()
	feeds.states[domain.TabPopular] = domain.FeedState{
		Status:   domain.FeedReady,
		Articles: []domain.Article{{ID: "art-1", Title: "Headline"}},
	}
	handler := NewDashboardHandler(NewMockDashboardService(), feeds, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds/popular", nil)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/feeds/{tab}", handler.GetFeed).Methods(http.MethodGet)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var state domain.FeedState
	if err := json.Unmarshal(rr.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if state.Status != domain.FeedReady {
		t.Fatalf("expected ready state, got %s", state.Status)
	}
	if len(state.Articles) != 1 || state.Articles[0].ID != "art-1" {
		t.Fatalf("unexpected articles: %v", state.Articles)
	}
}

func TestDashboardHandler_GetFeed_UnknownTab(t *testing.T) {
	handler := NewDashboardHandler(NewMockDashboardService(), NewMockFeedService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds/sports", nil)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/feeds/{tab}", handler.GetFeed).Methods(http.MethodGet)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
