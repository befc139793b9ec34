package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/serpents.yaml
var defaultSerpentsYAML []byte

// Bundled layout IDs.
const (
	LayoutClassic  = "classic"
	LayoutSerpents = "serpents"
)

// DefaultPacing returns the standard replay timing at 60 ticks per second.
func DefaultPacing() PacingConfig {
	return PacingConfig{
		DiceTicks: 40,
		StepTicks: 42,
		FaceEvery: 4,
	}
}

// DefaultLayout returns the hardcoded classic layout.
// Used when the embedded YAML cannot be parsed.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ID:              LayoutClassic,
		Name:            "Classic",
		Description:     "The standard 10x10 board: 7 ladders, 8 snakes",
		BoardSize:       10,
		WinningPosition: 100,
		Ladders: []LinkConfig{
			{Start: 4, End: 25},
			{Start: 13, End: 46},
			{Start: 33, End: 49},
			{Start: 42, End: 63},
			{Start: 50, End: 69},
			{Start: 62, End: 81},
			{Start: 74, End: 92},
		},
		Snakes: []LinkConfig{
			{Start: 27, End: 5},
			{Start: 40, End: 3},
			{Start: 43, End: 18},
			{Start: 54, End: 31},
			{Start: 66, End: 45},
			{Start: 76, End: 58},
			{Start: 89, End: 53},
			{Start: 99, End: 41},
		},
		Pacing: DefaultPacing(),
	}
}

// GetDefaultYAML returns the embedded YAML for a bundled layout.
func GetDefaultYAML(layoutID string) []byte {
	switch layoutID {
	case LayoutClassic:
		return defaultClassicYAML
	case LayoutSerpents:
		return defaultSerpentsYAML
	default:
		return nil
	}
}

// DefaultLayoutIDs lists the bundled layouts.
func DefaultLayoutIDs() []string {
	return []string{LayoutClassic, LayoutSerpents}
}
