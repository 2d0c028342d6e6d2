package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestResolveOrCreate_KeepsExistingID(t *testing.T) {
	s := NewMemoryStore(15)

	id := s.ResolveOrCreate("abc-123")
	if id != "abc-123" {
		t.Errorf("Expected 'abc-123', got %q", id)
	}
}

func TestResolveOrCreate_MintsUniqueIDs(t *testing.T) {
	s := NewMemoryStore(15)

	a := s.ResolveOrCreate("")
	b := s.ResolveOrCreate("")

	if a == "" || b == "" {
		t.Fatal("Expected non-empty minted IDs")
	}
	if a == b {
		t.Errorf("Expected distinct IDs, both were %q", a)
	}
}

func TestAppend_OrderPreserved(t *testing.T) {
	s := NewMemoryStore(15)

	s.Append("sess", "You: hi")
	s.Append("sess", "Assistant: hello")

	got := s.Get("sess")
	if len(got) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(got))
	}
	if got[0] != "You: hi" || got[1] != "Assistant: hello" {
		t.Errorf("Unexpected history order: %v", got)
	}
}

func TestAppend_TruncatesToLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		appends int
	}{
		{"exactly at limit", 5, 5},
		{"one past limit", 5, 6},
		{"far past limit", 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewMemoryStore(tc.limit)
			for i := 0; i < tc.appends; i++ {
				s.Append("sess", fmt.Sprintf("line %d", i))
			}

			got := s.Get("sess")
			want := tc.appends
			if want > tc.limit {
				want = tc.limit
			}
			if len(got) != want {
				t.Fatalf("Expected %d lines, got %d", want, len(got))
			}

			// Oldest entries drop first: the tail of the appends survives.
			first := fmt.Sprintf("line %d", tc.appends-want)
			if got[0] != first {
				t.Errorf("Expected oldest surviving line %q, got %q", first, got[0])
			}
			last := fmt.Sprintf("line %d", tc.appends-1)
			if got[len(got)-1] != last {
				t.Errorf("Expected newest line %q, got %q", last, got[len(got)-1])
			}
		})
	}
}

func TestGet_UnknownSessionEmpty(t *testing.T) {
	s := NewMemoryStore(15)

	got := s.Get("never-seen")
	if len(got) != 0 {
		t.Errorf("Expected empty history, got %v", got)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore(15)
	s.Append("sess", "You: hi")

	got := s.Get("sess")
	got[0] = "mutated"

	if s.Get("sess")[0] != "You: hi" {
		t.Error("Get must return a copy, not alias internal state")
	}
}

func TestClearAll_EmptiesEverySession(t *testing.T) {
	s := NewMemoryStore(15)
	s.Append("a", "You: one")
	s.Append("b", "You: two")

	s.ClearAll()

	if len(s.Get("a")) != 0 || len(s.Get("b")) != 0 {
		t.Error("Expected all sessions empty after ClearAll")
	}
}

func TestSessions_DoNotInteract(t *testing.T) {
	s := NewMemoryStore(15)
	s.Append("a", "You: for a")
	s.Append("b", "You: for b")

	if got := s.Get("a"); len(got) != 1 || got[0] != "You: for a" {
		t.Errorf("Session a leaked: %v", got)
	}
	if got := s.Get("b"); len(got) != 1 || got[0] != "You: for b" {
		t.Errorf("Session b leaked: %v", got)
	}
}

func TestConcurrentAppends_NoLostUpdates(t *testing.T) {
	const n = 50
	s := NewMemoryStore(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append("sess", fmt.Sprintf("msg %d", i))
		}(i)
	}
	wg.Wait()

	got := s.Get("sess")
	if len(got) != n {
		t.Fatalf("Expected %d lines after %d concurrent appends, got %d", n, n, len(got))
	}

	seen := make(map[string]bool, n)
	for _, line := range got {
		seen[line] = true
	}
	for i := 0; i < n; i++ {
		if !seen[fmt.Sprintf("msg %d", i)] {
			t.Errorf("Lost update: msg %d missing from history", i)
		}
	}
}
