package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"news-dashboard/internal/domain"
)

// LocalStore persists the session record plus fallback preference and
// read-history records in a single JSON file. Access is read-then-write with
// last-write-wins semantics; concurrent writers are an accepted race.
type LocalStore struct {
	mu     sync.Mutex
	path   string
	logger domain.Logger
}

type localState struct {
	Session     *domain.Session                     `json:"session,omitempty"`
	Preferences map[string]*domain.PreferenceSet    `json:"preferences,omitempty"`
	Likes       map[string][]domain.EngagementEvent `json:"likes,omitempty"`
	Reads       map[string][]domain.EngagementEvent `json:"reads,omitempty"`
}

// NewLocalStore creates the data directory and returns a store backed by
// <dataDir>/records.json.
func NewLocalStore(dataDir string, logger domain.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &LocalStore{
		path:   filepath.Join(dataDir, "records.json"),
		logger: logger,
	}, nil
}

// Save persists the session record, overwriting any prior session.
func (s *LocalStore) Save(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(st *localState) {
		st.Session = session
	})
}

// Load returns the persisted session, or nil when none exists.
func (s *LocalStore) Load() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	return st.Session, nil
}

// Delete removes the persisted session; deleting an absent session is fine.
func (s *LocalStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(st *localState) {
		st.Session = nil
	})
}

// Get returns the fallback preference record, or nil when never saved.
func (s *LocalStore) Get(ctx context.Context, userID string) (*domain.PreferenceSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	return st.Preferences[userID], nil
}

// Upsert writes the fallback preference record.
func (s *LocalStore) Upsert(ctx context.Context, prefs *domain.PreferenceSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(st *localState) {
		if st.Preferences == nil {
			st.Preferences = make(map[string]*domain.PreferenceSet)
		}
		st.Preferences[prefs.UserID] = prefs
	})
}

// AppendLike appends a like event to the fallback records.
func (s *LocalStore) AppendLike(ctx context.Context, event *domain.EngagementEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(st *localState) {
		if st.Likes == nil {
			st.Likes = make(map[string][]domain.EngagementEvent)
		}
		st.Likes[event.UserID] = append(st.Likes[event.UserID], *event)
	})
}

// AppendRead appends a read event to the fallback records.
func (s *LocalStore) AppendRead(ctx context.Context, event *domain.EngagementEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(st *localState) {
		if st.Reads == nil {
			st.Reads = make(map[string][]domain.EngagementEvent)
		}
		st.Reads[event.UserID] = append(st.Reads[event.UserID], *event)
	})
}

// ListReads returns the user's read events ordered newest-first.
func (s *LocalStore) ListReads(ctx context.Context, userID string) ([]domain.EngagementEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	reads := append([]domain.EngagementEvent(nil), st.Reads[userID]...)
	sort.SliceStable(reads, func(i, j int) bool {
		return reads[i].Timestamp.After(reads[j].Timestamp)
	})
	return reads, nil
}

func (s *LocalStore) read() (*localState, error) {
	st := &localState{}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading local records: %w", err)
	}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("decoding local records: %w", err)
	}
	return st, nil
}

func (s *LocalStore) update(apply func(*localState)) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	apply(st)
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local records: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing local records: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing local records: %w", err)
	}
	return nil
}
