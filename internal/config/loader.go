package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load loads the board configuration.
// Search order: customPath -> ~/.chessboard/config.yaml -> ./configs/chessboard.yaml -> embedded default
// Fields missing from the file keep their built-in defaults.
func Load(customPath string) (ChessboardConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChessboardConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ChessboardConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "chessboard.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultChessboardYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults and validates the result.
func parse(data []byte) (ChessboardConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chessboard", filename)
}

// Validate checks that sizes are usable and names resolve.
func (c ChessboardConfig) Validate() error {
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("%w: board.tile_size must be positive", ErrInvalidConfig)
	}
	if c.Board.PieceLift < 0 {
		return fmt.Errorf("%w: board.piece_lift must not be negative", ErrInvalidConfig)
	}
	if c.View.CellWidth < 1 || c.View.CellHeight < 1 {
		return fmt.Errorf("%w: view cell size must be at least 1x1", ErrInvalidConfig)
	}
	if c.View.PieceWidth < 1 || c.View.PieceWidth > c.View.CellWidth {
		return fmt.Errorf("%w: view.piece_width must be between 1 and cell_width", ErrInvalidConfig)
	}
	if c.Effect.DurationTicks < 1 {
		return fmt.Errorf("%w: effect.duration_ticks must be positive", ErrInvalidConfig)
	}
	if c.Effect.Particles < 0 {
		return fmt.Errorf("%w: effect.particles must not be negative", ErrInvalidConfig)
	}

	for name, value := range map[string]string{
		"light_tile": c.Theme.LightTile,
		"dark_tile":  c.Theme.DarkTile,
		"white":      c.Theme.White,
		"black":      c.Theme.Black,
		"highlight":  c.Theme.Highlight,
		"cursor":     c.Theme.Cursor,
		"particle":   c.Theme.Particle,
	} {
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalidConfig, name, value)
		}
	}

	seen := make(map[string]bool, len(c.Setups))
	for _, s := range c.Setups {
		if s.ID == "" {
			return fmt.Errorf("%w: setup without id", ErrInvalidConfig)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate setup id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
		if _, err := s.ToSetup(); err != nil {
			return err
		}
	}
	return nil
}

// Grid returns the world-space grid described by the config.
func (c ChessboardConfig) Grid() board.Grid {
	return board.Grid{TileSize: c.Board.TileSize, PieceLift: c.Board.PieceLift}
}

// ToSetup converts a user layout into a board setup.
// Type, color and range errors are reported here; two pieces on one square
// are only detected when the setup is applied.
func (s SetupConfig) ToSetup() (board.Setup, error) {
	out := make(board.Setup, 0, len(s.Pieces))
	for i, p := range s.Pieces {
		t := board.ParsePieceType(p.Type)
		if t == board.NoPieceType {
			return nil, fmt.Errorf("%w: setup %q piece %d: unknown type %q", ErrInvalidConfig, s.ID, i, p.Type)
		}
		color, ok := board.ParseColor(p.Color)
		if !ok {
			return nil, fmt.Errorf("%w: setup %q piece %d: unknown color %q", ErrInvalidConfig, s.ID, i, p.Color)
		}
		at := board.C(p.Row, p.Col)
		if !at.OnBoard() {
			return nil, fmt.Errorf("%w: setup %q piece %d: %w", ErrInvalidConfig, s.ID, i, board.ErrOffBoard)
		}
		out = append(out, board.Placement{Type: t, Color: color, At: at})
	}
	return out, nil
}
