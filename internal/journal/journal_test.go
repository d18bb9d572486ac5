package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close journal: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestOpenCreatesFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strider.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer store.Close()

	if err := store.Append(context.Background(), Entry{
		Event:   EventSubmitted,
		Command: "stand",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{CreatedAt: base, Event: EventSubmitted, Command: "stand", CommandID: 7},
		{CreatedAt: base.Add(time.Second), Event: EventSucceeded, Command: "stand", CommandID: 7},
		{CreatedAt: base.Add(2 * time.Second), Event: EventFailed, Command: "power-on", Detail: "estopped"},
	}
	for _, entry := range entries {
		if err := store.Append(ctx, entry); err != nil {
			t.Fatalf("append %s: %v", entry.Command, err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].Event != EventFailed || got[0].Detail != "estopped" {
		t.Fatalf("newest entry = %+v", got[0])
	}
	if got[2].Event != EventSubmitted || got[2].CommandID != 7 {
		t.Fatalf("oldest entry = %+v", got[2])
	}
	if !got[2].CreatedAt.Equal(base) {
		t.Fatalf("created at = %v, want %v", got[2].CreatedAt, base)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Append(ctx, Entry{
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Event:     EventSubmitted,
			Command:   "stand",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestAppendDefaultsCreatedAt(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if err := store.Append(ctx, Entry{Event: EventSubmitted, Command: "sit"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].CreatedAt.Before(before) {
		t.Fatalf("created at %v predates the append", got[0].CreatedAt)
	}
}
