package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sandevgo/wikirag/internal/core"
)

func TestStore_GetOrCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	first := store.Get(ctx, "abc")
	if first == nil {
		t.Fatal("expected a history, got nil")
	}
	if first.Len() != 0 {
		t.Errorf("new history should be empty, has %d turns", first.Len())
	}

	second := store.Get(ctx, "abc")
	if first != second {
		t.Error("expected the same *History for repeated access")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestStore_AppendsVisibleAcrossAccesses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	store.Get(ctx, "s1").Add(core.Message{Role: core.RoleUser, Content: "hello"})
	store.Get(ctx, "s1").Add(core.Message{Role: core.RoleAssistant, Content: "hi"})

	turns := store.Get(ctx, "s1").Turns()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Content != "hello" || turns[1].Content != "hi" {
		t.Errorf("turns out of order: %+v", turns)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	store.Get(ctx, "a").Add(core.Message{Role: core.RoleUser, Content: "for a"})

	if n := store.Get(ctx, "b").Len(); n != 0 {
		t.Errorf("session b should be empty, has %d turns", n)
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i%3)
			store.Get(ctx, id).Add(core.Message{Role: core.RoleUser, Content: "x"})
		}(i)
	}
	wg.Wait()

	if store.Len() != 3 {
		t.Errorf("expected 3 sessions, got %d", store.Len())
	}
	total := 0
	for i := 0; i < 3; i++ {
		total += store.Get(ctx, fmt.Sprintf("session-%d", i)).Len()
	}
	if total != 10 {
		t.Errorf("expected 10 turns total, got %d", total)
	}
}
