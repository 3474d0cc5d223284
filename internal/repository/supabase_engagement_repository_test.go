package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"news-dashboard/internal/domain"
)

func newTestDocumentStore(t *testing.T, url string) domain.DocumentStoreClient {
	t.Helper()
	store := NewSupabaseClient(&testConfig{supabaseURL: url}, &mockLogger{})
	if err := store.Initialize(); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	return store
}

func TestSupabaseEngagementRepository_ListReads_MapsRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"user_id": "alice", "article_id": "a2", "title": "Newer", "url": "https://example.com/2", "created_at": "2026-08-30T11:00:00Z"},
			{"user_id": "alice", "article_id": "a1", "title": "Older", "url": "https://example.com/1", "created_at": "2026-08-30T10:00:00Z"}
		]`))
	}))
	defer server.Close()

	repo := NewSupabaseEngagementRepository(newTestDocumentStore(t, server.URL), &mockLogger{})

	reads, err := repo.ListReads(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reads) != 2 {
		t.Fatalf("expected 2 reads, got %d", len(reads))
	}
	if reads[0].ArticleID != "a2" {
		t.Fatalf("expected newest read first, got %s", reads[0].ArticleID)
	}
	if reads[0].Kind != domain.EngagementRead {
		t.Fatalf("expected read kind, got %s", reads[0].Kind)
	}
	if reads[0].Snapshot.Title != "Newer" {
		t.Fatalf("expected snapshot title carried, got %s", reads[0].Snapshot.Title)
	}
}

func TestSupabaseEngagementRepository_ListReads_HonorsDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	repo := NewSupabaseEngagementRepository(newTestDocumentStore(t, server.URL), &mockLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := repo.ListReads(ctx, "alice")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected an error at the deadline")
	}
	if elapsed >= 2*time.Second {
		t.Fatalf("call ran past the deadline: %s", elapsed)
	}
}

func TestSupabaseEngagementRepository_AppendLike_HonorsDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	repo := NewSupabaseEngagementRepository(newTestDocumentStore(t, server.URL), &mockLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := repo.AppendLike(ctx, &domain.EngagementEvent{
		UserID:    "alice",
		ArticleID: "a1",
		Kind:      domain.EngagementLike,
		Timestamp: time.Now(),
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected an error at the deadline")
	}
	if elapsed >= 2*time.Second {
		t.Fatalf("call ran past the deadline: %s", elapsed)
	}
}
