// Package game implements the click-driven selection and move state machine.
// The controller owns the piece registry and talks to the scene only through
// the Renderer interface.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-chessboard/internal/board"
)

// HitKind classifies what a pointer event landed on.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitTile
	HitPiece
)

// Hit is the resolved result of a pointer event.
type Hit struct {
	Kind   HitKind
	Coord  board.Coord  // Set for HitTile
	Handle board.Handle // Set for HitPiece
}

// NoHit is a click on empty space.
func NoHit() Hit {
	return Hit{Kind: HitNone}
}

// TileHit is a click on the tile at c.
func TileHit(c board.Coord) Hit {
	return Hit{Kind: HitTile, Coord: c}
}

// PieceHit is a click on the piece with handle h.
func PieceHit(h board.Handle) Hit {
	return Hit{Kind: HitPiece, Handle: h}
}

// String returns a short description for logs.
func (h Hit) String() string {
	switch h.Kind {
	case HitTile:
		return "tile" + h.Coord.String()
	case HitPiece:
		return fmt.Sprintf("piece#%d", h.Handle)
	default:
		return "none"
	}
}
