package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func samplePuzzle(seed int64, totals ...int) PuzzleRecord {
	dirs := []string{"Up", "Right", "Down", "Left"}
	rec := PuzzleRecord{Seed: seed}
	for i, total := range totals {
		rec.Picks = append(rec.Picks, Pick{
			Direction: dirs[i%len(dirs)],
			Base:      total,
			Slice:     1,
			Total:     total,
		})
		rec.Tally += total
	}
	return rec
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadPuzzle(t *testing.T) {
	store := openTestStore(t)

	rec := samplePuzzle(42, 1, -4, 6, 2)
	id, err := store.SavePuzzle(rec)
	if err != nil {
		t.Fatalf("SavePuzzle() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated ID %q is not a UUID: %v", id, err)
	}

	got, err := store.Puzzle(id)
	if err != nil {
		t.Fatalf("Puzzle() failed: %v", err)
	}
	if got.Seed != 42 || got.Tally != 5 {
		t.Errorf("Puzzle() = seed %d tally %d, want 42 and 5", got.Seed, got.Tally)
	}
	if len(got.Picks) != 4 {
		t.Fatalf("got %d picks, want 4", len(got.Picks))
	}
	for i, p := range got.Picks {
		if p != rec.Picks[i] {
			t.Errorf("pick %d = %+v, want %+v", i, p, rec.Picks[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	rec := samplePuzzle(1, 3)
	rec.ID = uuid.NewString()
	id, err := store.SavePuzzle(rec)
	if err != nil {
		t.Fatal(err)
	}
	if id != rec.ID {
		t.Errorf("SavePuzzle() = %q, want %q", id, rec.ID)
	}

	// Same ID twice violates the primary key and leaves no partial picks.
	if _, err := store.SavePuzzle(rec); err == nil {
		t.Error("duplicate ID should fail")
	}
	got, err := store.Puzzle(rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Picks) != 1 {
		t.Errorf("got %d picks after failed duplicate save, want 1", len(got.Picks))
	}
}

func TestStorePuzzleNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Puzzle("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Puzzle(nope) err = %v, want ErrNotFound", err)
	}
}

func TestStoreRecentPuzzlesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SavePuzzle(samplePuzzle(int64(i), i+1)); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentPuzzles(3)
	if err != nil {
		t.Fatalf("RecentPuzzles() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 puzzles with limit, got %d", len(recent))
	}

	// Same-second inserts fall back to insertion order, newest first.
	if recent[0].Seed != 4 || recent[2].Seed != 2 {
		t.Errorf("unexpected order: seeds %d, %d, %d", recent[0].Seed, recent[1].Seed, recent[2].Seed)
	}
	for _, r := range recent {
		if len(r.Picks) != 1 {
			t.Errorf("puzzle %s has %d picks, want 1", r.ID, len(r.Picks))
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Puzzles != 0 || st.BestTally != 0 || !st.AvgTally.IsZero() || !st.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", st)
	}

	for _, totals := range [][]int{{4, 4}, {-8, 2}, {16}} {
		if _, err := store.SavePuzzle(samplePuzzle(0, totals...)); err != nil {
			t.Fatal(err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Puzzles != 3 || st.BestTally != 16 || st.WorstTally != -6 {
		t.Errorf("Stats() = %+v, want 3 puzzles, best 16, worst -6", st)
	}
	if !st.AvgTally.Equal(decimal.NewFromInt(6)) {
		t.Errorf("AvgTally = %s, want 6", st.AvgTally)
	}

	if _, err := store.SavePuzzle(samplePuzzle(0, 1)); err != nil {
		t.Fatal(err)
	}
	st, err = store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	// 19 / 4
	if want := decimal.RequireFromString("4.75"); !st.AvgTally.Equal(want) {
		t.Errorf("AvgTally = %s, want %s", st.AvgTally, want)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SavePuzzle(samplePuzzle(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	recent, err := store.RecentPuzzles(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d puzzles after Clear, want 0", len(recent))
	}
}
