package store_test

import (
	"sync"
	"testing"

	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

type listState struct {
	Items    store.Entities[item]
	Selected string
}

func TestMemo_RecomputesOnlyWhenKeyChanges(t *testing.T) {
	t.Parallel()

	calls := 0
	total := store.Memo(
		func(s listState) store.Entities[item] { return s.Items },
		func(s listState) int {
			calls++
			sum := 0
			for _, it := range s.Items.All() {
				sum += it.Value
			}
			return sum
		},
	)

	s := listState{Items: store.NewEntities(item{ID: "a", Value: 1}, item{ID: "b", Value: 2})}
	if got := total(s); got != 3 {
		t.Fatalf("total = %d, want 3", got)
	}

	// Unrelated field change keeps the memoized result.
	s.Selected = "a"
	total(s)
	// A no-op reduction returns the same snapshot.
	s.Items = s.Items.Add(item{ID: "a", Value: 100})
	total(s)
	if calls != 1 {
		t.Fatalf("compute calls = %d, want 1", calls)
	}

	s.Items = s.Items.Put(item{ID: "b", Value: 10})
	if got := total(s); got != 11 {
		t.Fatalf("total = %d, want 11", got)
	}
	if calls != 2 {
		t.Fatalf("compute calls = %d, want 2", calls)
	}
}

func TestMemo_ConcurrentUse(t *testing.T) {
	t.Parallel()

	sel := store.Memo(
		func(s listState) string { return s.Selected },
		func(s listState) string { return "sel:" + s.Selected },
	)

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			if got := sel(listState{Selected: "x"}); got != "sel:x" {
				t.Errorf("sel = %q, want sel:x", got)
			}
		})
	}
	wg.Wait()
}

func TestSafeRef_GetSet(t *testing.T) {
	t.Parallel()

	ref := store.NewRef("initial")
	if got := ref.Get(); got != "initial" {
		t.Fatalf("Get() = %q, want %q", got, "initial")
	}
	ref.Set("updated")
	if got := ref.Get(); got != "updated" {
		t.Fatalf("Get() = %q, want %q", got, "updated")
	}
}
