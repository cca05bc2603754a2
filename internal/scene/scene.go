// Package scene is the visual side of the board. It keeps its own copy of
// where each piece is drawn, animates capture effects and turns pointer
// positions back into board hits. It never decides anything about the game:
// it only echoes the commands the controller sends.
package scene

import (
	"math/rand"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
)

// Layout constants
const (
	labelCols   = 3 // Columns left of the board for row labels
	labelRows   = 1 // Rows above the board for column labels
	titleRows   = 1 // Rows reserved for the title line
	minWidthPad = 2 // Margin on each side
)

// sprite is the scene's record of one piece.
type sprite struct {
	kind        board.PieceType
	color       board.Color
	pos         board.Vec3
	highlighted bool
}

// Options configures a Scene.
type Options struct {
	Grid   board.Grid
	View   config.ViewConfig
	Effect config.EffectConfig
	Theme  Theme
	Seed   int64
}

// OptionsFromConfig builds scene options from a loaded config.
func OptionsFromConfig(cfg config.ChessboardConfig, seed int64) Options {
	return Options{
		Grid:   cfg.Grid(),
		View:   cfg.View,
		Effect: cfg.Effect,
		Theme:  ThemeFromConfig(cfg.Theme),
		Seed:   seed,
	}
}

// Scene renders the board into a core.Screen and implements game.Renderer.
type Scene struct {
	opts    Options
	proj    Projection
	sprites map[board.Handle]*sprite
	effects []*effect
	rng     *rand.Rand

	cursor      board.Coord
	showCursor  bool
	width       int
	height      int
	tooSmall    bool
	highlighted board.Handle
}

// New creates an empty scene sized for a width x height screen area.
func New(opts Options, width, height int) *Scene {
	if opts.View.CellWidth < 1 {
		opts.View.CellWidth = 1
	}
	if opts.View.CellHeight < 1 {
		opts.View.CellHeight = 1
	}
	if opts.View.PieceWidth < 1 {
		opts.View.PieceWidth = 1
	}
	if opts.Grid.TileSize <= 0 {
		opts.Grid = board.DefaultGrid()
	}

	s := &Scene{
		opts:    opts,
		sprites: make(map[board.Handle]*sprite),
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
	s.Resize(width, height)
	return s
}

// Resize recentres the board for a new screen size.
// Game state is untouched; only the projection changes.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height

	cw, ch := s.opts.View.CellWidth, s.opts.View.CellHeight
	boardW := board.Size*cw + labelCols
	boardH := board.Size*ch + labelRows + titleRows

	s.tooSmall = width < boardW+2*minWidthPad || height < boardH

	originX := (width-boardW)/2 + labelCols
	originY := (height-boardH)/2 + titleRows + labelRows
	if originY < titleRows+labelRows {
		originY = titleRows + labelRows
	}

	s.proj = Projection{
		Grid:    s.opts.Grid,
		OriginX: originX,
		OriginY: originY,
		CellW:   cw,
		CellH:   ch,
	}
}

// Projection returns the current world-to-screen mapping.
func (s *Scene) Projection() Projection {
	return s.proj
}

// TooSmall reports whether the screen cannot fit the board.
func (s *Scene) TooSmall() bool {
	return s.tooSmall
}

// Cursor returns the keyboard cursor position.
func (s *Scene) Cursor() board.Coord {
	return s.cursor
}

// MoveCursor shifts the keyboard cursor, clamped to the board, and shows it.
func (s *Scene) MoveCursor(dRow, dCol int) {
	next := s.cursor.Add(dRow, dCol)
	if next.OnBoard() {
		s.cursor = next
	}
	s.showCursor = true
}

// SetCursor places the keyboard cursor on c if c is on the board.
func (s *Scene) SetCursor(c board.Coord) {
	if c.OnBoard() {
		s.cursor = c
	}
}

// HideCursor stops drawing the keyboard cursor (mouse input took over).
func (s *Scene) HideCursor() {
	s.showCursor = false
}

// ActiveEffects returns the number of capture effects still animating.
func (s *Scene) ActiveEffects() int {
	return len(s.effects)
}

// SpriteCount returns the number of pieces the scene is drawing.
func (s *Scene) SpriteCount() int {
	return len(s.sprites)
}

// SpritePosition returns where the scene draws piece h.
func (s *Scene) SpritePosition(h board.Handle) (board.Vec3, bool) {
	sp, ok := s.sprites[h]
	if !ok {
		return board.Vec3{}, false
	}
	return sp.pos, true
}

// Highlighted returns the handle drawn as selected, or board.NoHandle.
func (s *Scene) Highlighted() board.Handle {
	return s.highlighted
}

// PlaceNewPiece adds a sprite for a newly created piece.
func (s *Scene) PlaceNewPiece(h board.Handle, t board.PieceType, c board.Color, pos board.Vec3) {
	s.sprites[h] = &sprite{kind: t, color: c, pos: pos}
}

// HighlightSelected marks a sprite as selected.
func (s *Scene) HighlightSelected(h board.Handle) {
	if sp, ok := s.sprites[h]; ok {
		sp.highlighted = true
		s.highlighted = h
	}
}

// ClearHighlight removes the selection mark from a sprite.
func (s *Scene) ClearHighlight(h board.Handle) {
	if sp, ok := s.sprites[h]; ok {
		sp.highlighted = false
	}
	if s.highlighted == h {
		s.highlighted = board.NoHandle
	}
}

// Reposition moves a sprite to a new world position.
func (s *Scene) Reposition(h board.Handle, pos board.Vec3) {
	if sp, ok := s.sprites[h]; ok {
		sp.pos = pos
	}
}

// RemoveFromScene deletes a sprite.
func (s *Scene) RemoveFromScene(h board.Handle) {
	delete(s.sprites, h)
	if s.highlighted == h {
		s.highlighted = board.NoHandle
	}
}

// SpawnCaptureEffect starts a particle burst at pos. The scene owns the
// effect from here on and drops it once its duration has elapsed.
func (s *Scene) SpawnCaptureEffect(pos board.Vec3) {
	s.effects = append(s.effects, newEffect(pos, s.opts.Effect, s.rng))
}

// Tick advances all running effects by one frame and drops finished ones.
func (s *Scene) Tick() {
	alive := s.effects[:0]
	for _, e := range s.effects {
		e.step()
		if !e.done() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = alive
}
