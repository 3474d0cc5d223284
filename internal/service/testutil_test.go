package service

import (
	"context"
	"sync"

	"news-dashboard/internal/domain"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// In-memory session repository.
type memSessionRepo struct {
	session *domain.Session
	loadErr error
	saveErr error
}

func (r *memSessionRepo) Save(s *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.session = s
	return nil
}

func (r *memSessionRepo) Load() (*domain.Session, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.session, nil
}

func (r *memSessionRepo) Delete() error {
	r.session = nil
	return nil
}

// In-memory preference repository.
type memPreferenceRepo struct {
	prefs  map[string]*domain.PreferenceSet
	getErr error
	putErr error
}

func newMemPreferenceRepo() *memPreferenceRepo {
	return &memPreferenceRepo{prefs: make(map[string]*domain.PreferenceSet)}
}

func (r *memPreferenceRepo) Get(ctx context.Context, userID string) (*domain.PreferenceSet, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.prefs[userID], nil
}

func (r *memPreferenceRepo) Upsert(ctx context.Context, p *domain.PreferenceSet) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.prefs[p.UserID] = p
	return nil
}

// In-memory engagement repository.
type memEngagementRepo struct {
	mu      sync.Mutex
	likes   []domain.EngagementEvent
	reads   []domain.EngagementEvent
	listErr error
}

func (r *memEngagementRepo) AppendLike(ctx context.Context, e *domain.EngagementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes = append(r.likes, *e)
	return nil
}

func (r *memEngagementRepo) AppendRead(ctx context.Context, e *domain.EngagementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads = append(r.reads, *e)
	return nil
}

func (r *memEngagementRepo) ListReads(ctx context.Context, userID string) ([]domain.EngagementEvent, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.EngagementEvent
	for i := len(r.reads) - 1; i >= 0; i-- {
		if r.reads[i].UserID == userID {
			out = append(out, r.reads[i])
		}
	}
	return out, nil
}

// Stub article sources.
type stubSearcher struct {
	articles []domain.Article
	err      error
}

func (s *stubSearcher) TrendingArticles(ctx context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

type stubRecommender struct {
	articles []domain.Article
	err      error
}

func (s *stubRecommender) RecommendedArticles(ctx context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

// Counting engagement sender.
type countingSender struct {
	mu     sync.Mutex
	events []domain.EngagementEvent
	err    error
}

func (s *countingSender) Send(ctx context.Context, e *domain.EngagementEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *e)
	return s.err
}

func (s *countingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
