package config

import (
	_ "embed"
)

//go:embed defaults/chessboard.yaml
var defaultChessboardYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() ChessboardConfig {
	return ChessboardConfig{
		Board: BoardConfig{
			TileSize:  2,
			PieceLift: 0.75,
		},
		View: ViewConfig{
			CellWidth:  7,
			CellHeight: 3,
			PieceWidth: 3,
			ASCII:      false,
			Labels:     true,
		},
		Effect: EffectConfig{
			DurationTicks: 45, // ~750ms at 60fps
			Particles:     12,
			Speed:         0.12,
		},
		Theme: ThemeConfig{
			LightTile: "tan",
			DarkTile:  "brown",
			White:     "bright_white",
			Black:     "black",
			Highlight: "bright_blue",
			Cursor:    "bright_yellow",
			Particle:  "orange",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChessboardYAML
}
