package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("realms", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("realms", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("realms", (i+1)*100)
	}

	scores, err := store.TopScores("realms", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("realms")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("realms")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("realms", 100)
	store.SaveScore("realms", 300)
	store.SaveScore("realms", 200)

	high, err = store.HighScore("realms")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	first := Run{GameID: "realms", Outcome: "quit", Level: 2, Kills: 14, Score: 240, Duration: 95 * time.Second}
	second := Run{GameID: "realms", Player: "alice", Outcome: "victory", Level: 5, Kills: 80, Deaths: 2, Score: 1300, Duration: 12 * time.Minute}

	if _, err := store.SaveRun(first); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(second); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("realms", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	got := runs[0]
	if got.Player != "alice" || got.Outcome != "victory" || got.Level != 5 || got.Kills != 80 || got.Deaths != 2 {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.Duration != 12*time.Minute {
		t.Errorf("Duration = %v, expected 12m", got.Duration)
	}
	if runs[1].Player != "local" {
		t.Errorf("Empty player should default to local, got %q", runs[1].Player)
	}

	// Runs also feed the leaderboard
	high, _ := store.HighScore("realms")
	if high != 1300 {
		t.Errorf("HighScore = %d, expected 1300", high)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "realms", Player: "alice", Outcome: "quit", Score: 10})
	store.SaveRun(Run{GameID: "realms", Player: "bob", Outcome: "quit", Score: 20})
	store.SaveRun(Run{GameID: "realms", Player: "alice", Outcome: "victory", Score: 30})

	runs, err := store.PlayerRuns("alice", 0)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Player != "alice" {
			t.Errorf("Run for %q returned for alice", r.Player)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "realms", Outcome: "victory", Kills: 50, Score: 900})
	store.SaveRun(Run{GameID: "realms", Outcome: "quit", Kills: 10, Score: 100})

	stats, err := store.GetGameStats("realms")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 900 || stats.AvgScore != 500 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.Victories != 1 || stats.TotalKills != 60 {
		t.Errorf("Unexpected run stats: victories=%d kills=%d", stats.Victories, stats.TotalKills)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Victories != 0 {
		t.Errorf("Empty stats: %+v", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "realms", Outcome: "quit", Score: 100})
	store.SaveScore("other", 300)

	if err := store.ClearScores("realms"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("realms", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("realms", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected")
	}
}
