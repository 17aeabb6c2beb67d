package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("tetris_manual", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	manualScores, err := store.TopScores("tetris_manual", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(manualScores) != 1 {
		t.Errorf("Expected 1 manual score, got %d", len(manualScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_manual", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	pilotScores, _ := store.TopScores("tetris", 10)
	if len(pilotScores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(pilotScores))
	}

	manualScores, _ := store.TopScores("tetris_manual", 10)
	if len(manualScores) != 1 {
		t.Error("Manual scores should not be affected by clearing pilot scores")
	}
}

func TestStoreSaveAndListSolves(t *testing.T) {
	store := openTestStore(t)

	entries := []SolveEntry{
		{Kind: "T", BoardWidth: 10, BoardHeight: 20, WallCount: 12, PlanLen: 18, Solved: true, DurationUs: 420},
		{Kind: "I", BoardWidth: 10, BoardHeight: 20, WallCount: 30, PlanLen: 0, Solved: false, DurationUs: 910},
		{Kind: "T", BoardWidth: 8, BoardHeight: 12, WallCount: 5, PlanLen: 9, Solved: true, DurationUs: 130},
	}
	for _, e := range entries {
		if _, err := store.SaveSolve(e); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(recent))
	}

	// Most recent first
	if recent[0].Kind != "T" || recent[0].PlanLen != 9 {
		t.Errorf("Most recent solve = %+v, expected the last inserted entry", recent[0])
	}
	if !recent[0].Solved || recent[1].Solved {
		t.Error("Solved flags did not round-trip")
	}
}

func TestStoreSolveRate(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{Kind: "T", Solved: true, PlanLen: 5})
	store.SaveSolve(SolveEntry{Kind: "T", Solved: false})
	store.SaveSolve(SolveEntry{Kind: "O", Solved: true, PlanLen: 3})

	attempts, solved, err := store.SolveRate("T")
	if err != nil {
		t.Fatalf("SolveRate() failed: %v", err)
	}
	if attempts != 2 || solved != 1 {
		t.Errorf("SolveRate(T) = (%d, %d), expected (2, 1)", attempts, solved)
	}

	attempts, solved, err = store.SolveRate("")
	if err != nil {
		t.Fatalf("SolveRate() failed: %v", err)
	}
	if attempts != 3 || solved != 2 {
		t.Errorf("SolveRate(all) = (%d, %d), expected (3, 2)", attempts, solved)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 10)
	store.SaveScore("tetris", 30)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
