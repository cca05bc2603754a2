package scene

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
	"github.com/vovakirdan/tui-chessboard/internal/core"
	"github.com/vovakirdan/tui-chessboard/internal/game"
)

const (
	testW = 80
	testH = 40
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	return New(OptionsFromConfig(config.DefaultConfig(), 1), testW, testH)
}

// glyphCell returns the screen cell where a piece on c is drawn.
func glyphCell(s *Scene, c board.Coord) (int, int) {
	return s.Projection().WorldToCell(s.opts.Grid.ToWorld(c, board.LayerPiece))
}

func TestLayoutCentersBoard(t *testing.T) {
	s := newTestScene(t)
	if s.TooSmall() {
		t.Fatal("80x40 should fit the board")
	}

	r := s.Projection().BoardRect()
	if r.W != 56 || r.H != 24 {
		t.Errorf("BoardRect() size = %dx%d, expected 56x24", r.W, r.H)
	}
	if r.X != 13 || r.Y != 9 {
		t.Errorf("BoardRect() origin = (%d, %d), expected (13, 9)", r.X, r.Y)
	}
}

func TestProjectionPlacesPiecesInTheirTiles(t *testing.T) {
	s := newTestScene(t)
	p := s.Projection()

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := board.C(row, col)
			x, y := glyphCell(s, c)
			tile := p.TileRect(c)
			if !tile.Contains(x, y) {
				t.Errorf("glyph of %v at (%d, %d) outside tile %+v", c, x, y, tile)
			}
			cx, cy := tile.Center()
			if x != cx || y != cy {
				t.Errorf("glyph of %v at (%d, %d), expected tile centre (%d, %d)", c, x, y, cx, cy)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	s := newTestScene(t)
	g := s.opts.Grid
	s.PlaceNewPiece(1, board.Pawn, board.White, g.ToWorld(board.C(0, 0), board.LayerPiece))

	gx, gy := glyphCell(s, board.C(0, 0))
	tile := s.Projection().TileRect(board.C(0, 0))

	tests := []struct {
		name     string
		x, y     int
		expected game.Hit
	}{
		{"glyph centre", gx, gy, game.PieceHit(1)},
		{"glyph left edge", gx - 1, gy, game.PieceHit(1)},
		{"glyph right edge", gx + 1, gy, game.PieceHit(1)},
		{"tile margin beside glyph", gx - 2, gy, game.TileHit(board.C(0, 0))},
		{"tile corner", tile.X, tile.Y, game.TileHit(board.C(0, 0))},
		{"empty tile", tile.X + 7*3, tile.Y + 3*2, game.TileHit(board.C(2, 3))},
		{"outside board", 0, 0, game.NoHit()},
		{"just right of board", tile.X + 56, tile.Y, game.NoHit()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Resolve(tc.x, tc.y); got != tc.expected {
				t.Errorf("Resolve(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestResolveCoord(t *testing.T) {
	s := newTestScene(t)
	s.PlaceNewPiece(7, board.Rook, board.Black, s.opts.Grid.ToWorld(board.C(7, 7), board.LayerPiece))

	if got := s.ResolveCoord(board.C(7, 7), true); got != game.PieceHit(7) {
		t.Errorf("ResolveCoord(prefer piece) = %v", got)
	}
	if got := s.ResolveCoord(board.C(7, 7), false); got != game.TileHit(board.C(7, 7)) {
		t.Errorf("ResolveCoord(tile) = %v", got)
	}
	if got := s.ResolveCoord(board.C(4, 4), true); got != game.TileHit(board.C(4, 4)) {
		t.Errorf("ResolveCoord(empty) = %v", got)
	}
	if got := s.ResolveCoord(board.C(8, 0), true); got != game.NoHit() {
		t.Errorf("ResolveCoord(off board) = %v", got)
	}
}

func TestCommandsUpdateSprites(t *testing.T) {
	s := newTestScene(t)
	g := s.opts.Grid
	s.PlaceNewPiece(3, board.Pawn, board.White, g.ToWorld(board.C(1, 3), board.LayerPiece))

	s.HighlightSelected(3)
	if s.Highlighted() != 3 {
		t.Errorf("Highlighted() = %d, expected 3", s.Highlighted())
	}

	to := g.ToWorld(board.C(2, 3), board.LayerPiece)
	s.Reposition(3, to)
	if pos, _ := s.SpritePosition(3); pos != to {
		t.Errorf("SpritePosition() = %+v, expected %+v", pos, to)
	}

	s.ClearHighlight(3)
	if s.Highlighted() != board.NoHandle {
		t.Error("ClearHighlight() should clear the highlight")
	}

	s.RemoveFromScene(3)
	if s.SpriteCount() != 0 {
		t.Errorf("SpriteCount() = %d after removal", s.SpriteCount())
	}

	// Commands for unknown handles are ignored
	s.HighlightSelected(99)
	s.Reposition(99, to)
	if s.Highlighted() != board.NoHandle || s.SpriteCount() != 0 {
		t.Error("unknown handles should be ignored")
	}
}

func TestCaptureEffectExpires(t *testing.T) {
	s := newTestScene(t)
	duration := s.opts.Effect.DurationTicks

	s.SpawnCaptureEffect(s.opts.Grid.ToWorld(board.C(4, 4), board.LayerTile))
	if s.ActiveEffects() != 1 {
		t.Fatalf("ActiveEffects() = %d, expected 1", s.ActiveEffects())
	}

	for i := 0; i < duration-1; i++ {
		s.Tick()
	}
	if s.ActiveEffects() != 1 {
		t.Errorf("effect ended early after %d ticks", duration-1)
	}

	s.Tick()
	if s.ActiveEffects() != 0 {
		t.Errorf("effect still active after %d ticks", duration)
	}
}

func TestEffectIsDeterministic(t *testing.T) {
	at := board.Vec3{X: 1, Z: -3}
	a := New(OptionsFromConfig(config.DefaultConfig(), 99), testW, testH)
	b := New(OptionsFromConfig(config.DefaultConfig(), 99), testW, testH)
	a.SpawnCaptureEffect(at)
	b.SpawnCaptureEffect(at)
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Tick()
	}

	pa, pb := a.effects[0].particles, b.effects[0].particles
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestRenderDrawsPiecesAndParticles(t *testing.T) {
	s := newTestScene(t)
	g := s.opts.Grid
	s.PlaceNewPiece(1, board.Pawn, board.White, g.ToWorld(board.C(1, 0), board.LayerPiece))
	s.PlaceNewPiece(2, board.Rook, board.Black, g.ToWorld(board.C(7, 7), board.LayerPiece))
	s.HighlightSelected(1)

	dst := core.NewScreen(testW, testH)
	s.Render(dst)

	x, y := glyphCell(s, board.C(1, 0))
	cell := dst.GetCell(x, y)
	if cell.Rune != '♟' {
		t.Errorf("pawn glyph = %q, expected ♟", cell.Rune)
	}
	if cell.Bg != s.opts.Theme.Highlight {
		t.Error("selected pawn should be drawn on the highlight color")
	}

	x, y = glyphCell(s, board.C(7, 7))
	if got := dst.GetCell(x, y); got.Rune != '♜' || got.Fg != s.opts.Theme.Black {
		t.Errorf("rook cell = %+v", got)
	}

	// Tile shades alternate
	p := s.Projection()
	light := dst.GetCell(p.TileRect(board.C(0, 0)).X, p.TileRect(board.C(0, 0)).Y)
	dark := dst.GetCell(p.TileRect(board.C(0, 1)).X, p.TileRect(board.C(0, 1)).Y)
	if light.Bg != s.opts.Theme.LightTile || dark.Bg != s.opts.Theme.DarkTile {
		t.Errorf("tile backgrounds = %v / %v", light.Bg, dark.Bg)
	}

	s.SpawnCaptureEffect(g.ToWorld(board.C(4, 4), board.LayerTile))
	s.Tick()
	dst.Clear()
	s.Render(dst)
	if !strings.ContainsRune(dst.String(), '*') {
		t.Error("particles should be drawn while the effect runs")
	}
}

func TestRenderASCII(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.View.ASCII = true
	s := New(OptionsFromConfig(cfg, 1), testW, testH)
	s.PlaceNewPiece(1, board.Rook, board.Black, s.opts.Grid.ToWorld(board.C(7, 0), board.LayerPiece))
	s.PlaceNewPiece(2, board.Pawn, board.White, s.opts.Grid.ToWorld(board.C(1, 0), board.LayerPiece))

	dst := core.NewScreen(testW, testH)
	s.Render(dst)
	out := dst.String()
	if !strings.ContainsRune(out, 'r') || !strings.ContainsRune(out, 'P') {
		t.Error("ASCII mode should draw 'r' for black rooks and 'P' for white pawns")
	}
}

func TestTooSmall(t *testing.T) {
	s := New(OptionsFromConfig(config.DefaultConfig(), 1), 30, 10)
	if !s.TooSmall() {
		t.Fatal("30x10 should be too small")
	}
	if got := s.Resolve(15, 5); got != game.NoHit() {
		t.Errorf("Resolve() on too small screen = %v", got)
	}

	dst := core.NewScreen(30, 10)
	s.Render(dst)
	if !strings.Contains(dst.String(), "too small") {
		t.Error("too small message not drawn")
	}

	s.Resize(testW, testH)
	if s.TooSmall() {
		t.Error("Resize() should recompute the fit")
	}
}

func TestCursor(t *testing.T) {
	s := newTestScene(t)
	s.MoveCursor(-1, 0)
	if s.Cursor() != board.C(0, 0) {
		t.Errorf("cursor left the board: %v", s.Cursor())
	}
	s.MoveCursor(2, 3)
	if s.Cursor() != board.C(2, 3) {
		t.Errorf("Cursor() = %v, expected (2,3)", s.Cursor())
	}

	dst := core.NewScreen(testW, testH)
	s.Render(dst)
	r := s.Projection().TileRect(board.C(2, 3))
	if dst.Get(r.X, r.Y) != '┌' {
		t.Error("cursor corner not drawn")
	}
}

// TestClickFlowWithController drives the controller through pointer
// positions, the way the terminal platform does.
func TestClickFlowWithController(t *testing.T) {
	s := newTestScene(t)
	setup := board.StandardSetup().With(board.Placement{Type: board.Pawn, Color: board.Black, At: board.C(2, 3)})
	ctrl, err := game.New(setup, s, game.Options{Grid: s.opts.Grid})
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	if s.SpriteCount() != 21 {
		t.Fatalf("SpriteCount() = %d, expected 21", s.SpriteCount())
	}

	// Click the white pawn's glyph
	x, y := glyphCell(s, board.C(1, 3))
	if got := ctrl.HandleClick(s.Resolve(x, y)); got != game.OutcomeSelected {
		t.Fatalf("click on pawn = %v, expected selected", got)
	}

	// Clicking the black pawn's glyph only switches the selection
	x, y = glyphCell(s, board.C(2, 3))
	if got := ctrl.HandleClick(s.Resolve(x, y)); got != game.OutcomeSwitched {
		t.Fatalf("click on enemy glyph = %v, expected switched", got)
	}

	// Reselect the white pawn and click the free corner of the black pawn's tile
	x, y = glyphCell(s, board.C(1, 3))
	ctrl.HandleClick(s.Resolve(x, y))
	tile := s.Projection().TileRect(board.C(2, 3))
	if got := ctrl.HandleClick(s.Resolve(tile.X, tile.Y)); got != game.OutcomeCaptured {
		t.Fatalf("click on tile corner = %v, expected captured", got)
	}

	if s.SpriteCount() != 20 {
		t.Errorf("SpriteCount() = %d after capture, expected 20", s.SpriteCount())
	}
	if s.ActiveEffects() != 1 {
		t.Errorf("ActiveEffects() = %d, expected 1", s.ActiveEffects())
	}
	if s.Highlighted() != board.NoHandle {
		t.Error("no piece should be highlighted after the move")
	}
}
