// Package board holds the gameplay state of the 8x8 board: coordinates,
// the grid <-> world mapping and the piece registry.
// It has no rendering dependencies; the scene only ever sees the commands
// the game controller sends it.
package board

import "fmt"

// Size is the number of rows (and columns) of the board.
const Size = 8

// Coord identifies a square by row and column, both in [0, Size-1].
// Row 0 is White's back rank.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// IsOnBoard reports whether (row, col) lies on the board.
func IsOnBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// OnBoard reports whether the coordinate lies on the board.
func (c Coord) OnBoard() bool {
	return IsOnBoard(c.Row, c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Shade is the colour of a board tile.
type Shade uint8

const (
	Light Shade = iota
	Dark
)

// TileShadeAt returns the shade of the tile at c.
// Tiles alternate by (row+col) % 2, with (0,0) light.
func TileShadeAt(c Coord) Shade {
	if (c.Row+c.Col)%2 == 0 {
		return Light
	}
	return Dark
}
