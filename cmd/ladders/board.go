package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

var boardCmd = &cobra.Command{
	Use:   "board [game]",
	Short: "Print a board and its links",
	Long: `Print the numbered grid of a board (default: ladders) as it is laid out
on screen, followed by its ladders and snakes.

Markers: ^ ladder start, v snake start, * winning square.

Examples:
  ladders board
  ladders board ladders_serpents
  ladders board --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	checkGame(gameID)

	g, err := loadGame(gameID, runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n\n", g.Layout().Name)
	printBoard(os.Stdout, g.Board())
}

// printBoard writes the grid top row first, then the link table.
func printBoard(w io.Writer, b *core.Board) {
	size := b.Size()
	for row := range size {
		var line strings.Builder
		for col := range size {
			sq := b.Square(core.Coord{Row: row, Col: col})
			line.WriteString(fmt.Sprintf("%4d%c", sq, squareMarker(b, sq)))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	var ladderLines, snakeLines []string
	for _, l := range b.Links() {
		entry := fmt.Sprintf("  %3d -> %d", l.Start, l.End)
		if l.Type == core.LinkLadder {
			ladderLines = append(ladderLines, entry)
		} else {
			snakeLines = append(snakeLines, entry)
		}
	}

	fmt.Fprintf(w, "\nLadders (%d):\n", len(ladderLines))
	for _, l := range ladderLines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintf(w, "\nSnakes (%d):\n", len(snakeLines))
	for _, l := range snakeLines {
		fmt.Fprintln(w, l)
	}
}

func squareMarker(b *core.Board, sq int) rune {
	if l, ok := b.LinkAt(sq); ok {
		if l.Type == core.LinkLadder {
			return '^'
		}
		return 'v'
	}
	if sq == b.WinningPosition() {
		return '*'
	}
	return ' '
}
