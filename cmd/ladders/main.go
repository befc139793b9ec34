// ladders is a two-player Snakes & Ladders duel for the terminal.
//
// Usage:
//
//	ladders list              - List available boards
//	ladders play <game>       - Play a board
//	ladders menu              - Pick boards interactively
//	ladders board [game]      - Print a board and its links
//	ladders simulate [game]   - Play a match headless and print the log
//	ladders validate <file>   - Check a layout file
//	ladders scores <game>     - Show the leaderboard for a board
//	ladders serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible matches
//	--db <path>       - Set database path (default: ~/.ladders/ladders.db)
//	--config <path>   - Use a custom layout file
//	--speed <preset>  - Replay speed: slow, normal, fast, instant
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ladders-duel/internal/config"
	"github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders"
	"github.com/vovakirdan/ladders-duel/internal/registry"
	"github.com/vovakirdan/ladders-duel/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagSpeed  string
)

// logger reports warnings on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ladders"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes & Ladders Duel - two players, one terminal",
	Long: `Snakes & Ladders Duel is a hot-seat board game for the terminal.
Two players take turns rolling a die; ladders lift tokens, snakes drop
them, and the first to land exactly on the last square wins.

Available commands:
  list      - Show all boards
  play      - Play a board directly
  menu      - Interactive board picker
  board     - Print a board and its links
  simulate  - Play a match without the UI
  validate  - Check a layout file
  scores    - View the leaderboard
  serve     - Start SSH server for remote play

Examples:
  ladders list
  ladders play ladders --p1 Ana --p2 Bo
  ladders menu --speed fast
  ladders simulate --seed 7
  ladders serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ladders/ladders.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom layout YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Replay speed: slow, normal, fast, instant")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags hands the layout and speed flags to the game package.
func applyGameFlags() error {
	preset, ok := config.ParsePacingPreset(flagSpeed)
	if !ok {
		return fmt.Errorf("unknown speed %q (want slow, normal, fast or instant)", flagSpeed)
	}
	ladders.SetConfigPath(flagConfig)
	ladders.SetPacing(preset)
	return nil
}

// runtimeConfig builds the platform config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens match history. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		return nil
	}
	return store
}

// checkGame exits with a hint if the game is not registered.
func checkGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ladders list' to see available boards.")
		os.Exit(1)
	}
}

// loadGame creates a game and loads its layout without starting the UI.
func loadGame(gameID string, cfg core.RuntimeConfig) (*ladders.Game, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	lg, ok := g.(*ladders.Game)
	if !ok {
		return nil, fmt.Errorf("game %q has no board", gameID)
	}
	lg.Reset(cfg)
	if err := lg.LayoutError(); err != nil {
		return nil, err
	}
	return lg, nil
}

// gameArg returns the game named on the command line, or the classic board.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "ladders"
}
