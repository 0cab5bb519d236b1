package storage

import (
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadGame(t *testing.T) {
	store := openTestStore(t)

	saved := &SavedGame{
		Name:    "first",
		FEN:     "8:4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1",
		Setup:   "classic",
		Moves:   []string{"e4", "e5", "Nf3"},
		Outcome: "playing",
	}
	if err := store.SaveGame(saved); err != nil {
		t.Fatal(err)
	}
	if saved.SavedAt.IsZero() {
		t.Error("SaveGame did not stamp SavedAt")
	}

	got, err := store.LoadGame("first")
	if err != nil {
		t.Fatal(err)
	}
	if got.FEN != saved.FEN || got.Setup != saved.Setup || got.Outcome != saved.Outcome {
		t.Errorf("loaded game differs: %+v", got)
	}
	if len(got.Moves) != 3 || got.Moves[2] != "Nf3" {
		t.Errorf("loaded moves = %v", got.Moves)
	}
}

func TestSaveGameNeedsName(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveGame(&SavedGame{FEN: "8:8/8/8/8/8/8/8/8 w"}); err == nil {
		t.Error("unnamed save accepted")
	}
}

func TestLoadGameNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.LoadGame("missing")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want ErrGameNotFound", err)
	}
}

func TestListAndDeleteGames(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"alpha", "beta"} {
		if err := store.SaveGame(&SavedGame{Name: name, FEN: "8:8/8/8/8/8/8/8/8 w"}); err != nil {
			t.Fatal(err)
		}
	}

	names, err := store.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("ListGames = %v, want two names", names)
	}

	if err := store.DeleteGame("alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadGame("alpha"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("deleted game still loads: %v", err)
	}

	names, err = store.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "beta" {
		t.Errorf("ListGames after delete = %v, want [beta]", names)
	}
}

func TestStatsStartEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesPlayed != 0 || stats.Wins != 0 {
		t.Errorf("fresh stats = %+v", stats)
	}
	if stats.WinRate() != 0 {
		t.Errorf("fresh win rate = %f, want 0", stats.WinRate())
	}
}

func TestRecordResult(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		won, draw  bool
		difficulty string
	}{
		{won: true, difficulty: "hard"},
		{won: true, difficulty: "hard"},
		{won: false},
		{draw: true},
		{won: true, difficulty: "easy"},
	}
	for _, s := range steps {
		if err := store.RecordResult(s.won, s.draw, s.difficulty); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesPlayed != 5 {
		t.Errorf("GamesPlayed = %d, want 5", stats.GamesPlayed)
	}
	if stats.Wins != 3 || stats.Losses != 1 || stats.Draws != 1 {
		t.Errorf("W/L/D = %d/%d/%d, want 3/1/1", stats.Wins, stats.Losses, stats.Draws)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", stats.LongestStreak)
	}
	if stats.WinsByDiff["hard"] != 2 || stats.WinsByDiff["easy"] != 1 {
		t.Errorf("WinsByDiff = %v", stats.WinsByDiff)
	}
	if got := stats.WinRate(); got != 60 {
		t.Errorf("WinRate = %f, want 60", got)
	}
}
