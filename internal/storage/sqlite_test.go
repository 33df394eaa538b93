package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some classic runs
	for _, r := range []Result{
		{ModeID: "classic", Score: 12, Level: 12, Accuracy: 100, Duration: 51.3},
		{ModeID: "classic", Score: 5, Level: 5, Accuracy: 100, Duration: 33.0},
		{ModeID: "classic", Score: 20, Level: 20, Accuracy: 100, Duration: 68.9},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Different mode
	if _, err := store.SaveResult(Result{ModeID: "daily", Score: 9, Level: 9, Accuracy: 100, Duration: 40.1}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Retrieve top results for classic
	results, err := store.TopResults("classic", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending by score
	if results[0].Score != 20 || results[1].Score != 12 || results[2].Score != 5 {
		t.Errorf("Results not sorted by score: %v", results)
	}

	// Fields should round-trip
	if results[0].Level != 20 {
		t.Errorf("Expected level 20, got %d", results[0].Level)
	}
	if results[0].Accuracy != 100 {
		t.Errorf("Expected accuracy 100, got %d", results[0].Accuracy)
	}
	if math.Abs(results[0].Duration-68.9) > 1e-9 {
		t.Errorf("Expected duration 68.9, got %v", results[0].Duration)
	}

	// Retrieve top results for daily
	dailyResults, err := store.TopResults("daily", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(dailyResults) != 1 {
		t.Errorf("Expected 1 daily result, got %d", len(dailyResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveResult(Result{ModeID: "classic", Score: (i + 1) * 10, Level: (i + 1) * 10, Accuracy: 100})
	}

	// Request only top 3
	results, err := store.TopResults("classic", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 50, 40, 30 (top 3)
	if results[0].Score != 50 || results[1].Score != 40 || results[2].Score != 30 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	// Add runs
	store.SaveResult(Result{ModeID: "classic", Score: 10, Level: 10, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 30, Level: 30, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 20, Level: 20, Accuracy: 100})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{ModeID: "classic", Score: 10, Level: 10, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 20, Level: 20, Accuracy: 100})
	store.SaveResult(Result{ModeID: "daily", Score: 30, Level: 30, Accuracy: 100})

	// Clear only classic results
	if err := store.ClearResults("classic"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	// Classic should be empty
	classicResults, _ := store.TopResults("classic", 10)
	if len(classicResults) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(classicResults))
	}

	// Daily should still have results
	dailyResults, _ := store.TopResults("daily", 10)
	if len(dailyResults) != 1 {
		t.Errorf("Daily results should not be affected by clearing classic")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	// No results yet: everything zero
	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.BestScore != 0 || stats.BestLevel != 0 {
		t.Errorf("Expected zero stats for empty mode, got %+v", stats)
	}

	store.SaveResult(Result{ModeID: "classic", Score: 10, Level: 10, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 20, Level: 20, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 30, Level: 30, Accuracy: 100})

	stats, err = store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Plays != 3 {
		t.Errorf("Expected 3 plays, got %d", stats.Plays)
	}
	if stats.BestScore != 30 {
		t.Errorf("Expected best score 30, got %d", stats.BestScore)
	}
	if stats.BestLevel != 30 {
		t.Errorf("Expected best level 30, got %d", stats.BestLevel)
	}
	if math.Abs(stats.AvgScore-20.0) > 1e-9 {
		t.Errorf("Expected avg score 20, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreAllModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{ModeID: "classic", Score: 10, Level: 10, Accuracy: 100})
	store.SaveResult(Result{ModeID: "classic", Score: 20, Level: 20, Accuracy: 100})
	store.SaveResult(Result{ModeID: "daily", Score: 5, Level: 5, Accuracy: 100})

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["classic"].Plays != 2 || all["classic"].BestScore != 20 {
		t.Errorf("Unexpected classic stats: %+v", all["classic"])
	}
	if all["daily"].Plays != 1 || all["daily"].BestScore != 5 {
		t.Errorf("Unexpected daily stats: %+v", all["daily"])
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
