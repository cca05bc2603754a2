// Package config provides YAML-based configuration loading for the board:
// world geometry, terminal layout, capture effect tuning, theme colors and
// extra named setups.
package config

// ChessboardConfig contains all configuration for a board session.
type ChessboardConfig struct {
	Board  BoardConfig   `yaml:"board"`
	View   ViewConfig    `yaml:"view"`
	Effect EffectConfig  `yaml:"effect"`
	Theme  ThemeConfig   `yaml:"theme"`
	Setups []SetupConfig `yaml:"setups"`
}

// BoardConfig defines the world-space geometry of the board.
type BoardConfig struct {
	TileSize  float64 `yaml:"tile_size"`  // Edge length of a tile in world units
	PieceLift float64 `yaml:"piece_lift"` // Height of pieces above the board
}

// ViewConfig defines how tiles are laid out in terminal cells.
type ViewConfig struct {
	CellWidth  int  `yaml:"cell_width"`  // Terminal columns per tile
	CellHeight int  `yaml:"cell_height"` // Terminal rows per tile
	PieceWidth int  `yaml:"piece_width"` // Clickable columns of a piece glyph
	ASCII      bool `yaml:"ascii"`       // Use letters instead of chess glyphs
	Labels     bool `yaml:"labels"`      // Draw row/column numbers
}

// EffectConfig tunes the capture particle burst.
type EffectConfig struct {
	DurationTicks int     `yaml:"duration_ticks"` // Lifetime of a burst
	Particles     int     `yaml:"particles"`      // Particles per burst
	Speed         float64 `yaml:"speed"`          // World units per tick
}

// ThemeConfig names the colors used by the scene.
type ThemeConfig struct {
	LightTile string `yaml:"light_tile"`
	DarkTile  string `yaml:"dark_tile"`
	White     string `yaml:"white"`
	Black     string `yaml:"black"`
	Highlight string `yaml:"highlight"`
	Cursor    string `yaml:"cursor"`
	Particle  string `yaml:"particle"`
}

// SetupConfig is a user-defined initial layout.
type SetupConfig struct {
	ID     string            `yaml:"id"`
	Title  string            `yaml:"title"`
	Pieces []PlacementConfig `yaml:"pieces"`
}

// PlacementConfig is one piece of a user-defined layout.
type PlacementConfig struct {
	Type  string `yaml:"type"`  // "pawn" or "rook"
	Color string `yaml:"color"` // "white" or "black"
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
}
