package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders-duel/internal/registry"
	"github.com/vovakirdan/ladders-duel/internal/storage"
)

var (
	flagPlayer string
	flagMatch  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the leaderboard for a board",
	Long: `Display the top 10 players and the latest matches for a board
(default: ladders).

Examples:
  ladders scores
  ladders scores ladders_serpents
  ladders scores --player Ana
  ladders scores --match 2f1c...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the recent matches of one player")
	scoresCmd.Flags().StringVar(&flagMatch, "match", "", "Show one match by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the match history of the board")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	checkGame(gameID)
	info, _ := registry.Info(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagMatch != "":
		err = showMatch(store, flagMatch)
	case flagPlayer != "":
		err = showPlayer(store, flagPlayer)
	case flagClear:
		err = store.ClearMatches(gameID)
		if err == nil {
			fmt.Printf("Cleared match history for %s.\n", info.Title)
		}
	default:
		err = showLeaderboard(store, gameID, info.Title)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showLeaderboard(store *storage.Store, gameID, title string) error {
	leaders, err := store.Leaderboard(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(leaders) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ladders play %s' to get on the board!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-4s  %-6s  %s\n", "Rank", "Player", "Wins", "Played", "Win %")
	fmt.Printf("  %-4s  %-16s  %-4s  %-6s  %s\n", "----", "------", "----", "------", "-----")
	for i, e := range leaders {
		fmt.Printf("  %-4d  %-16s  %-4d  %-6d  %.0f%%\n", i+1, e.Name, e.Wins, e.Played, e.WinRate()*100)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("%d matches, %.1f turns on average, fastest win %d turns, longest match %d turns\n",
			stats.Matches, stats.AvgTurns, stats.ShortestWin, stats.LongestMatch)
	}

	recent, err := store.RecentMatches(gameID, 5)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent matches:")
	printMatches(recent)
	return nil
}

func showPlayer(store *storage.Store, name string) error {
	matches, err := store.PlayerMatches(name, 20)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Printf("No matches for %s.\n", name)
		return nil
	}

	wins := 0
	for _, m := range matches {
		if m.Winner() == name {
			wins++
		}
	}
	fmt.Printf("%s - %d wins in the last %d matches\n\n", name, wins, len(matches))
	printMatches(matches)
	return nil
}

func showMatch(store *storage.Store, matchID string) error {
	m, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with ID %q", matchID)
	}
	fmt.Printf("Match   %s\n", m.MatchID)
	fmt.Printf("Board   %s\n", m.GameID)
	fmt.Printf("Players %s vs %s\n", m.Player1, m.Player2)
	fmt.Printf("Winner  %s\n", m.Winner())
	fmt.Printf("Turns   %d\n", m.Turns)
	fmt.Printf("Played  %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func printMatches(matches []storage.MatchRecord) {
	for _, m := range matches {
		fmt.Printf("  %s  %-16s vs %-16s  winner %-16s  %3d turns  %s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Player1, m.Player2, m.Winner(), m.Turns, m.GameID)
	}
}
