package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders-duel/internal/config"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a layout file",
	Long: `Load a layout YAML and check it the way the game does before play:
the grid size, the winning square, link ranges and directions, duplicate
starts and links that would chain into each other.

Exits with status 1 and the validation code if the layout is rejected.

Examples:
  ladders validate ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	cfg, err := config.LoadLayoutFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := ladders.BoardFromLayout(cfg)
	if err != nil {
		var verr core.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Invalid layout (%s): %s\n", verr.Code, verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Invalid layout: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("OK: %s (%dx%d, winning square %d, %d ladders, %d snakes)\n",
		cfg.Name, board.Size(), board.Size(), board.WinningPosition(), len(cfg.Ladders), len(cfg.Snakes))
}
