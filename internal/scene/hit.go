package scene

import (
	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/core"
	"github.com/vovakirdan/tui-chessboard/internal/game"
)

// pieceRect returns the clickable screen area of a sprite: PieceWidth
// columns centred on the glyph, one row high.
func (s *Scene) pieceRect(sp *sprite) core.Rect {
	cx, cy := s.proj.WorldToCell(sp.pos)
	w := s.opts.View.PieceWidth
	return core.NewRect(cx-w/2, cy, w, 1)
}

// Resolve turns a pointer position into a hit on the nearest object under
// it. Pieces stand above tiles, so a piece glyph wins over its tile; the
// uncovered part of a tile resolves to the tile itself.
func (s *Scene) Resolve(x, y int) game.Hit {
	if s.tooSmall || !s.proj.BoardRect().Contains(x, y) {
		return game.NoHit()
	}

	if h, ok := s.spriteAtCell(x, y); ok {
		return game.PieceHit(h)
	}

	c, ok := s.opts.Grid.FromWorld(s.proj.ScreenToWorld(x, y))
	if !ok {
		return game.NoHit()
	}
	return game.TileHit(c)
}

// ResolveCoord builds a hit for the keyboard cursor. With preferPiece a
// piece standing on c is hit, otherwise the tile is.
func (s *Scene) ResolveCoord(c board.Coord, preferPiece bool) game.Hit {
	if !c.OnBoard() {
		return game.NoHit()
	}
	if preferPiece {
		if h, ok := s.spriteOn(c); ok {
			return game.PieceHit(h)
		}
	}
	return game.TileHit(c)
}

// spriteAtCell finds the sprite whose glyph covers (x, y).
// Ties go to the lowest handle so resolution is deterministic.
func (s *Scene) spriteAtCell(x, y int) (board.Handle, bool) {
	found := board.NoHandle
	for h, sp := range s.sprites {
		if !s.pieceRect(sp).Contains(x, y) {
			continue
		}
		if found == board.NoHandle || h < found {
			found = h
		}
	}
	return found, found != board.NoHandle
}

// spriteOn finds the sprite drawn on the tile c.
func (s *Scene) spriteOn(c board.Coord) (board.Handle, bool) {
	found := board.NoHandle
	for h, sp := range s.sprites {
		at, ok := s.opts.Grid.FromWorld(sp.pos)
		if !ok || at != c {
			continue
		}
		if found == board.NoHandle || h < found {
			found = h
		}
	}
	return found, found != board.NoHandle
}
