package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

var (
	flagRolls    []int
	flagMaxTurns int
	flagSimP1    string
	flagSimP2    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [game]",
	Short: "Play a match without the UI",
	Long: `Play a whole match headless and print every message as it happens.

Rolls come from the seeded die, or from --rolls, which are replayed in
order and start over when they run out.

Examples:
  ladders simulate --seed 42
  ladders simulate ladders_serpents --p1 Ana --p2 Bo
  ladders simulate --rolls 3,6,6,2 --max-turns 40`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntSliceVar(&flagRolls, "rolls", nil, "Scripted die faces, e.g. 3,6,1")
	simulateCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 1000, "Stop after this many turns")
	simulateCmd.Flags().StringVar(&flagSimP1, "p1", "", "Name of player 1")
	simulateCmd.Flags().StringVar(&flagSimP2, "p2", "", "Name of player 2")
}

func runSimulate(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	checkGame(gameID)

	g, err := loadGame(gameID, runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var dice core.Dice
	if len(flagRolls) > 0 {
		scripted, err := core.NewScriptedDice(flagRolls...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dice = scripted
	} else {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		dice = core.NewSeededDice(seed)
	}

	simulate(os.Stdout, g.Board(), dice, flagMaxTurns, flagSimP1, flagSimP2)
}

// simulate plays until someone wins or maxTurns is reached and returns the
// final session.
func simulate(w io.Writer, board *core.Board, dice core.Dice, maxTurns int, names ...string) core.Session {
	ctrl := core.NewController(board, dice, names...)
	for _, m := range ctrl.Messages() {
		fmt.Fprintln(w, m.Text)
	}

	for ctrl.Session().Turns < maxTurns {
		res, ok := ctrl.RequestRoll()
		if !ok {
			break
		}
		for _, m := range res.Messages {
			fmt.Fprintln(w, m.Text)
		}
	}

	s := ctrl.Session()
	fmt.Fprintln(w)
	if winner, ok := s.Winner(); ok {
		fmt.Fprintf(w, "%s won after %d turns.\n", winner.Name, s.Turns)
	} else {
		fmt.Fprintf(w, "No winner after %d turns.\n", s.Turns)
	}
	for _, p := range s.Players {
		fmt.Fprintf(w, "  %-16s square %d\n", p.Name, p.Position)
	}
	return s
}
