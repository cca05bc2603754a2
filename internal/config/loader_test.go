package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-chessboard/internal/board"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessboard.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	def := DefaultConfig()
	if cfg.Board != def.Board || cfg.View != def.View || cfg.Effect != def.Effect || cfg.Theme != def.Theme {
		t.Errorf("embedded YAML drifted from DefaultConfig():\n%+v\n%+v", cfg, def)
	}
	if len(cfg.Setups) == 0 {
		t.Error("embedded YAML should ship at least one extra setup")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, `
board:
  tile_size: 3
view:
  ascii: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.TileSize != 3 {
		t.Errorf("TileSize = %v, expected 3", cfg.Board.TileSize)
	}
	if cfg.Board.PieceLift != 0.75 {
		t.Errorf("PieceLift = %v, expected default 0.75", cfg.Board.PieceLift)
	}
	if !cfg.View.ASCII {
		t.Error("ASCII should be enabled")
	}
	if cfg.View.CellWidth != DefaultConfig().View.CellWidth {
		t.Errorf("CellWidth = %d, expected default", cfg.View.CellWidth)
	}

	g := cfg.Grid()
	if g.TileSize != 3 || g.PieceLift != 0.75 {
		t.Errorf("Grid() = %+v", g)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with missing custom file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero tile", "board:\n  tile_size: 0\n"},
		{"negative lift", "board:\n  piece_lift: -1\n"},
		{"wide piece", "view:\n  cell_width: 3\n  piece_width: 5\n"},
		{"no duration", "effect:\n  duration_ticks: 0\n"},
		{"bad color", "theme:\n  light_tile: chartreuse\n"},
		{"bad piece", "setups:\n  - id: x\n    pieces:\n      - {type: queen, color: white, row: 0, col: 0}\n"},
		{"bad side", "setups:\n  - id: x\n    pieces:\n      - {type: pawn, color: green, row: 0, col: 0}\n"},
		{"off board", "setups:\n  - id: x\n    pieces:\n      - {type: pawn, color: white, row: 9, col: 0}\n"},
		{"duplicate id", "setups:\n  - id: x\n  - id: x\n"},
		{"missing id", "setups:\n  - title: nameless\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestSetupConversion(t *testing.T) {
	s := SetupConfig{
		ID: "mini",
		Pieces: []PlacementConfig{
			{Type: "rook", Color: "white", Row: 0, Col: 0},
			{Type: "pawn", Color: "black", Row: 6, Col: 2},
		},
	}

	setup, err := s.ToSetup()
	if err != nil {
		t.Fatalf("ToSetup() failed: %v", err)
	}
	expected := board.Setup{
		{Type: board.Rook, Color: board.White, At: board.C(0, 0)},
		{Type: board.Pawn, Color: board.Black, At: board.C(6, 2)},
	}
	if len(setup) != len(expected) {
		t.Fatalf("ToSetup() returned %d placements", len(setup))
	}
	for i := range expected {
		if setup[i] != expected[i] {
			t.Errorf("placement %d = %+v, expected %+v", i, setup[i], expected[i])
		}
	}
}

func TestSetupDuplicateSquareDetectedOnApply(t *testing.T) {
	s := SetupConfig{
		ID: "clash",
		Pieces: []PlacementConfig{
			{Type: "rook", Color: "white", Row: 2, Col: 2},
			{Type: "pawn", Color: "black", Row: 2, Col: 2},
		},
	}
	setup, err := s.ToSetup()
	if err != nil {
		t.Fatalf("ToSetup() failed: %v", err)
	}
	if err := setup.Apply(board.NewRegistry(), nil); !errors.Is(err, board.ErrOccupiedCoordinate) {
		t.Errorf("Apply() = %v, expected ErrOccupiedCoordinate", err)
	}
}
