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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.ladders/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".ladders", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestSaveMatchAndLookup(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveMatch(MatchRecord{
		GameID:      "ladders",
		Player1:     "Ana",
		Player2:     "Bo",
		WinnerIndex: 1,
		Turns:       37,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if saved.ID == 0 || saved.MatchID == "" || saved.CreatedAt.IsZero() {
		t.Errorf("saved record not filled in: %+v", saved)
	}

	got, err := store.MatchByID(saved.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("match not found")
	}
	if got.Winner() != "Bo" || got.Turns != 37 || got.GameID != "ladders" {
		t.Errorf("unexpected match %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("created at %v, want %v", got.CreatedAt, saved.CreatedAt)
	}

	missing, err := store.MatchByID("nope")
	if err != nil || missing != nil {
		t.Errorf("MatchByID(nope) = %v, %v", missing, err)
	}
}

func TestSaveMatchRejectsBadWinner(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(MatchRecord{GameID: "ladders", Player1: "a", Player2: "b", WinnerIndex: 2}); err == nil {
		t.Error("winner index 2 should be rejected")
	}
}

func TestSaveMatchDuplicateID(t *testing.T) {
	store := openTestStore(t)
	m := MatchRecord{MatchID: "fixed", GameID: "ladders", Player1: "a", Player2: "b"}
	if _, err := store.SaveMatch(m); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveMatch(m); err == nil {
		t.Error("duplicate match ID should fail")
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveMatch(MatchRecord{
			GameID:    "ladders",
			Player1:   "Ana",
			Player2:   "Bo",
			Turns:     10 + i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveMatch(MatchRecord{GameID: "ladders_serpents", Player1: "Kim", Player2: "Lee"}); err != nil {
		t.Fatal(err)
	}

	recent, err := store.RecentMatches("ladders", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(recent))
	}
	if recent[0].Turns != 14 || recent[2].Turns != 12 {
		t.Errorf("expected newest first, got turns %d..%d", recent[0].Turns, recent[2].Turns)
	}

	all, err := store.RecentMatches("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 matches across games, got %d", len(all))
	}

	kim, err := store.PlayerMatches("Kim", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(kim) != 1 || kim[0].GameID != "ladders_serpents" {
		t.Errorf("unexpected matches for Kim: %+v", kim)
	}
}

func TestLeaderboard(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchRecord{
		{Player1: "Ana", Player2: "Bo", WinnerIndex: 0},
		{Player1: "Bo", Player2: "Ana", WinnerIndex: 1},
		{Player1: "Ana", Player2: "Cy", WinnerIndex: 1},
		{Player1: "Bo", Player2: "Cy", WinnerIndex: 0},
	}
	for _, m := range matches {
		m.GameID = "ladders"
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveMatch(MatchRecord{GameID: "other", Player1: "Zed", Player2: "Bo"}); err != nil {
		t.Fatal(err)
	}

	board, err := store.Leaderboard("ladders", 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	want := []LeaderboardEntry{
		{Name: "Ana", Wins: 2, Played: 3},
		{Name: "Cy", Wins: 1, Played: 2},
		{Name: "Bo", Wins: 1, Played: 3},
	}
	if len(board) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(board), len(want), board)
	}
	for i, w := range want {
		if board[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, board[i], w)
		}
	}
	if r := board[1].WinRate(); r != 0.5 {
		t.Errorf("Cy win rate = %v, want 0.5", r)
	}
}

func TestLeaderboardSharedName(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchRecord{
		{Player1: "Ana", Player2: "Ana", WinnerIndex: 0},
		{Player1: "Ana", Player2: "Ana", WinnerIndex: 1},
		{Player1: "Ana", Player2: "Bo", WinnerIndex: 1},
	}
	for _, m := range matches {
		m.GameID = "ladders"
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatal(err)
		}
	}

	board, err := store.Leaderboard("ladders", 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	want := []LeaderboardEntry{
		{Name: "Ana", Wins: 2, Played: 3},
		{Name: "Bo", Wins: 1, Played: 1},
	}
	if len(board) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(board), len(want), board)
	}
	for i, w := range want {
		if board[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, board[i], w)
		}
	}
}

func TestGameStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, turns := range []int{20, 40, 30} {
		if _, err := store.SaveMatch(MatchRecord{GameID: "ladders", Player1: "a", Player2: "b", Turns: turns}); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("ladders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Matches != 3 || stats.AvgTurns != 30 || stats.ShortestWin != 20 || stats.LongestMatch != 40 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if all["ladders"] == nil || all["ladders"].Matches != 3 {
		t.Errorf("unexpected all-games stats %+v", all)
	}

	if err := store.ClearMatches("ladders"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	stats, err = store.GetGameStats("ladders")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Matches != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats after clear, got %+v", stats)
	}
}
