package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestNewMatchID(t *testing.T) {
	a, b := NewMatchID(), NewMatchID()
	if a == b {
		t.Errorf("NewMatchID() returned the same ID twice: %s", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewMatchID() = %q is not a UUID: %v", a, err)
	}
}

func TestStoreSaveAndFetchMatch(t *testing.T) {
	store := openTestStore(t)

	in := MatchResult{
		MatchID:    NewMatchID(),
		Score1:     5,
		Score2:     3,
		Winner:     WinnerPlayer1,
		EndReason:  EndMenu,
		Ticks:      3600,
		BlocksLeft: 6,
		Duration:   time.Minute,
	}
	id, err := store.SaveMatch(in)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveMatch() id = %d, expected positive", id)
	}

	got, err := store.MatchByID(in.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}

	if got.Score1 != 5 || got.Score2 != 3 {
		t.Errorf("scores = %d-%d, expected 5-3", got.Score1, got.Score2)
	}
	if got.Winner != WinnerPlayer1 || got.EndReason != EndMenu {
		t.Errorf("winner/reason = %q/%q", got.Winner, got.EndReason)
	}
	if got.Ticks != 3600 || got.BlocksLeft != 6 {
		t.Errorf("ticks/blocks = %d/%d, expected 3600/6", got.Ticks, got.BlocksLeft)
	}
	if got.Duration != time.Minute {
		t.Errorf("duration = %s, expected 1m0s", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not set")
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("MatchByID() = %+v, expected nil", got)
	}
}

func TestStoreSaveMatchAssignsID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchResult{EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchResult{EndReason: EndQuit}); err != nil {
		t.Fatalf("second SaveMatch() failed: %v", err)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].MatchID == "" || matches[0].MatchID == matches[1].MatchID {
		t.Errorf("match IDs not assigned uniquely: %q, %q", matches[0].MatchID, matches[1].MatchID)
	}
}

func TestStoreSaveMatchDuplicateID(t *testing.T) {
	store := openTestStore(t)
	m := MatchResult{MatchID: NewMatchID(), EndReason: EndMenu}

	if _, err := store.SaveMatch(m); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(m); err == nil {
		t.Error("SaveMatch() with a duplicate match ID should fail")
	}
}

func TestStoreRecentMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveMatch(MatchResult{Score1: i, EndReason: EndMenu}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches with limit, got %d", len(matches))
	}
	// Newest first
	for i, expected := range []int{4, 3, 2} {
		if matches[i].Score1 != expected {
			t.Errorf("matches[%d].Score1 = %d, expected %d", i, matches[i].Score1, expected)
		}
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() on empty store failed: %v", err)
	}
	if empty.Matches != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Totals() on empty store = %+v", empty)
	}

	results := []MatchResult{
		{Score1: 7, Score2: 2, Winner: WinnerPlayer1, EndReason: EndMenu},
		{Score1: 1, Score2: 4, Winner: WinnerPlayer2, EndReason: EndMenu},
		{Score1: 3, Score2: 6, Winner: WinnerPlayer2, EndReason: EndQuit},
		{Score1: 2, Score2: 2, Winner: WinnerDraw, EndReason: EndQuit},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      int64
		expected int64
	}{
		{"matches", int64(totals.Matches), 4},
		{"player 1 wins", int64(totals.Wins1), 1},
		{"player 2 wins", int64(totals.Wins2), 2},
		{"draws", int64(totals.Draws), 1},
		{"player 1 points", totals.Points1, 13},
		{"player 2 points", totals.Points2, 14},
		{"best score", int64(totals.BestScore), 7},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %d, expected %d", tc.name, tc.got, tc.expected)
		}
	}
	if totals.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchResult{EndReason: EndMenu})
	store.SaveMatch(MatchResult{EndReason: EndMenu})

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches after clear, got %d", len(matches))
	}
}
