package ladders

import (
	"fmt"

	"github.com/vovakirdan/ladders-duel/internal/config"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

// MaxBoardSize keeps square numbers to three digits on screen.
const MaxBoardSize = 31

// BoardFromLayout builds a validated board from a layout.
func BoardFromLayout(cfg config.LayoutConfig) (*core.Board, error) {
	if cfg.BoardSize > MaxBoardSize {
		return nil, fmt.Errorf("layout %s: board size %d exceeds %d", cfg.ID, cfg.BoardSize, MaxBoardSize)
	}

	links := make([]core.Link, 0, len(cfg.Ladders)+len(cfg.Snakes))
	for _, l := range cfg.Ladders {
		links = append(links, core.Ladder(l.Start, l.End))
	}
	for _, s := range cfg.Snakes {
		links = append(links, core.Snake(s.Start, s.End))
	}

	b, err := core.NewBoard(cfg.BoardSize, cfg.WinningPosition, links)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", cfg.ID, err)
	}
	return b, nil
}

// LoadBoard loads a layout through the config search path and builds its board.
func LoadBoard(customPath, layoutID string) (*core.Board, config.LayoutConfig, error) {
	cfg, err := config.LoadLayout(customPath, layoutID)
	if err != nil {
		return nil, cfg, err
	}
	b, err := BoardFromLayout(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}
