package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-dashboard/internal/domain"
	apperrors "news-dashboard/pkg/errors"
)

// Mock implementations for handler testing
type MockSessionService struct {
	session *domain.Session
}

func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

func (m *MockSessionService) SignIn(userID, password, email string) (*domain.Session, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("User ID is required")
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}
	m.session = &domain.Session{
		UserID:    userID,
		Email:     email,
		Provider:  domain.ProviderLocal,
		Token:     "token-" + userID,
		CreatedAt: time.Now().UTC(),
	}
	return m.session, nil
}

func (m *MockSessionService) Restore(session *domain.Session) error {
	m.session = session
	return nil
}

func (m *MockSessionService) Current() (*domain.Session, error) {
	return m.session, nil
}

func (m *MockSessionService) SignOut() error {
	m.session = nil
	return nil
}

func (m *MockSessionService) Validate(token string) (*domain.Session, error) {
	if m.session == nil || m.session.Token != token {
		return nil, apperrors.NewAuthRequiredError("Session not found")
	}
	return m.session, nil
}

type MockDashboardService struct {
	showTab    domain.Tab
	showState  domain.FeedState
	showErr    error
	dropped    []string
	refreshed  int
	activeTabs map[string]domain.Tab
}

func NewMockDashboardService() *MockDashboardService {
	return &MockDashboardService{
		showTab:    domain.TabPopular,
		showState:  domain.FeedState{Status: domain.FeedReady, Articles: []domain.Article{}},
		activeTabs: make(map[string]domain.Tab),
	}
}

func (m *MockDashboardService) Show(ctx context.Context, userID string, tab domain.Tab) (domain.Tab, domain.FeedState, error) {
	if m.showErr != nil {
		return "", domain.FeedState{}, m.showErr
	}
	m.activeTabs[userID] = tab
	return tab, m.showState, nil
}

func (m *MockDashboardService) Refresh(ctx context.Context, userID string) (domain.Tab, domain.FeedState) {
	m.refreshed++
	return m.showTab, m.showState
}

func (m *MockDashboardService) State(userID string) (domain.Tab, domain.FeedState) {
	if tab, ok := m.activeTabs[userID]; ok {
		return tab, m.showState
	}
	return m.showTab, m.showState
}

func (m *MockDashboardService) Drop(userID string) {
	m.dropped = append(m.dropped, userID)
}

func createContextWithSession(req *http.Request, session *domain.Session) *http.Request {
	ctx := context.WithValue(req.Context(), sessionContextKey, session)
	return req.WithContext(ctx)
}

func testSession(userID string) *domain.Session {
	return &domain.Session{
		UserID:    userID,
		Email:     userID + "@example.com",
		Provider:  domain.ProviderLocal,
		Token:     "token-" + userID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	sessions := NewMockSessionService()
	handler := NewAuthHandler(sessions, NewMockDashboardService(), NewMockHandlerLogger())

	body := strings.NewReader(`{"user_id":"alice","password":"secret1","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)

	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var session domain.Session
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.UserID != "alice" {
		t.Fatalf("expected user id alice, got %s", session.UserID)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	handler := NewAuthHandler(NewMockSessionService(), NewMockDashboardService(), NewMockHandlerLogger())

	body := strings.NewReader(`{"user_id":"alice","password":"short","email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)

	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Password must be at least 6 characters" {
		t.Fatalf("unexpected error message: %s", resp["error"])
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(NewMockSessionService(), NewMockDashboardService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("not json"))

	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAuthHandler_Logout_DropsDashboard(t *testing.T) {
	sessions := NewMockSessionService()
	dashboards := NewMockDashboardService()
	handler := NewAuthHandler(sessions, dashboards, NewMockHandlerLogger())

	sessions.session = testSession("alice")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = createContextWithSession(req, sessions.session)

	rr := httptest.NewRecorder()
	handler.Logout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if sessions.session != nil {
		t.Fatal("expected session cleared")
	}
	if len(dashboards.dropped) != 1 || dashboards.dropped[0] != "alice" {
		t.Fatalf("expected dashboard dropped for alice, got %v", dashboards.dropped)
	}
}

func TestAuthHandler_GetSession_OK(t *testing.T) {
	handler := NewAuthHandler(NewMockSessionService(), NewMockDashboardService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req = createContextWithSession(req, testSession("alice"))

	rr := httptest.NewRecorder()
	handler.GetSession(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var session domain.Session
	if err := json.Unmarshal(rr.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.UserID != "alice" {
		t.Fatalf("expected user id alice, got %s", session.UserID)
	}
}

func TestAuthHandler_GetSession_NoContext(t *testing.T) {
	handler := NewAuthHandler(NewMockSessionService(), NewMockDashboardService(), NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)

	rr := httptest.NewRecorder()
	handler.GetSession(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
