// Package config provides YAML board layout loading for the game,
// with embedded defaults and a user search path.
package config

// LayoutConfig describes one board: its grid, its snakes and ladders and
// how fast the presentation replays a turn.
type LayoutConfig struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Description     string       `yaml:"description"`
	BoardSize       int          `yaml:"board_size"`
	WinningPosition int          `yaml:"winning_position"`
	Ladders         []LinkConfig `yaml:"ladders"`
	Snakes          []LinkConfig `yaml:"snakes"`
	Pacing          PacingConfig `yaml:"pacing"`
}

// LinkConfig is a single ladder or snake.
type LinkConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// PacingConfig controls the replay timing, in ticks.
type PacingConfig struct {
	DiceTicks int `yaml:"dice_ticks"` // Length of the dice tumble
	StepTicks int `yaml:"step_ticks"` // Hold time of each replay step
	FaceEvery int `yaml:"face_every"` // Tumble face changes every N ticks
}

// Pacing presets.
type PacingPreset string

const (
	PacingSlow    PacingPreset = "slow"
	PacingNormal  PacingPreset = "normal"
	PacingFast    PacingPreset = "fast"
	PacingInstant PacingPreset = "instant"
)

// ParsePacingPreset validates a preset name. Empty means normal.
func ParsePacingPreset(s string) (PacingPreset, bool) {
	switch PacingPreset(s) {
	case "", PacingNormal:
		return PacingNormal, true
	case PacingSlow, PacingFast, PacingInstant:
		return PacingPreset(s), true
	default:
		return "", false
	}
}

// ApplyPacingPreset scales the layout's pacing.
// Instant skips the tumble and shows each step for a single tick.
func ApplyPacingPreset(cfg *LayoutConfig, preset PacingPreset) {
	p := &cfg.Pacing
	switch preset {
	case PacingSlow:
		p.DiceTicks *= 2
		p.StepTicks *= 2
	case PacingFast:
		if p.DiceTicks > 0 {
			p.DiceTicks = max(1, p.DiceTicks/3)
		}
		p.StepTicks = max(1, p.StepTicks/3)
		p.FaceEvery = max(1, p.FaceEvery/2)
	case PacingInstant:
		p.DiceTicks = 0
		p.StepTicks = 1
		p.FaceEvery = 1
	}
}

// ApplyDefaults replaces invalid pacing and fills in derived fields.
// A zero DiceTicks is kept: it skips the tumble.
func (c *LayoutConfig) ApplyDefaults() {
	def := DefaultPacing()
	if c.Pacing.DiceTicks < 0 {
		c.Pacing.DiceTicks = def.DiceTicks
	}
	if c.Pacing.StepTicks <= 0 {
		c.Pacing.StepTicks = def.StepTicks
	}
	if c.Pacing.FaceEvery <= 0 {
		c.Pacing.FaceEvery = def.FaceEvery
	}
	if c.WinningPosition == 0 && c.BoardSize > 0 {
		c.WinningPosition = c.BoardSize * c.BoardSize
	}
	if c.Name == "" {
		c.Name = c.ID
	}
}
