package score

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndTop(t *testing.T) {
	store := newTestStore(t)

	runs := []Result{
		{Level: "intro.txt", Outcome: "escaped", Treasure: 3, Turns: 40},
		{Level: "intro.txt", Outcome: "captured", Treasure: 1, Turns: 12},
		{Level: "vault.txt", Outcome: "escaped", Treasure: 3, Turns: 25},
	}
	for i := range runs {
		if err := store.Record(&runs[i]); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if runs[i].ID == "" {
			t.Fatal("Record did not assign an ID")
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}

	top, err := store.Top(2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Top returned %d rows, want 2", len(top))
	}
	// Best run: most treasure, then fewest turns.
	if top[0].Level != "vault.txt" || top[0].Turns != 25 {
		t.Errorf("Top[0] = %+v, want the 25-turn vault escape", top[0])
	}
	if top[1].Turns != 40 {
		t.Errorf("Top[1] = %+v, want the 40-turn intro escape", top[1])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestTopEmpty(t *testing.T) {
	store := newTestStore(t)

	top, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Top on empty store returned %d rows", len(top))
	}
}
