package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders-duel/internal/games/ladders"
	"github.com/vovakirdan/ladders-duel/internal/platform/tui"
	"github.com/vovakirdan/ladders-duel/internal/registry"
)

var (
	flagP1 string
	flagP2 string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start a two-player match on the given board (default: ladders).

Players are asked for their names unless both --p1 and --p2 are given.

Controls:
  Space/Enter - Roll the die
  N           - New game
  P/Esc       - Pause
  B           - Back (when paused or finished)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Speed options:
  slow     - Twice as long per step
  normal   - Default pacing
  fast     - A third of the default
  instant  - No dice tumble, one tick per step

Examples:
  ladders play
  ladders play ladders_serpents --p1 Ana --p2 Bo
  ladders play --speed fast
  ladders play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Name of player 1")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Name of player 2")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	checkGame(gameID)

	cfg := runtimeConfig()

	names := []string{flagP1, flagP2}
	if flagP1 == "" || flagP2 == "" {
		entered, ok, err := tui.RunNamePrompt(names, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
		names = entered
	}
	ladders.SetPlayerNames(names...)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
