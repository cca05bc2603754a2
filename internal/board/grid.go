package board

import "math"

// Layer selects the height at which an entity sits in world space.
type Layer uint8

const (
	LayerTile  Layer = iota // y = 0
	LayerPiece              // y = Grid.PieceLift
)

// Vec3 is a position in world space. X runs along columns, Z along rows
// and Y is the height above the board plane.
type Vec3 struct {
	X, Y, Z float64
}

// Grid converts between board coordinates and world positions.
// The board is centred on the world origin.
type Grid struct {
	TileSize  float64 // Edge length of one tile in world units
	PieceLift float64 // Height of a piece's origin above the board
}

// DefaultGrid returns the grid used by the original scene: 2-unit tiles
// with pieces raised by 0.75.
func DefaultGrid() Grid {
	return Grid{TileSize: 2, PieceLift: 0.75}
}

// ToWorld returns the world position of the centre of the square c for
// the given layer. The mapping is affine and has no hidden state.
func (g Grid) ToWorld(c Coord, layer Layer) Vec3 {
	const half = Size / 2
	t := g.TileSize
	v := Vec3{
		X: float64(c.Col-half)*t + t/2,
		Z: float64(c.Row-half)*t + t/2,
	}
	if layer == LayerPiece {
		v.Y = g.PieceLift
	}
	return v
}

// FromWorld returns the square containing the world point v, ignoring
// its height. The second result is false when v is outside the board.
func (g Grid) FromWorld(v Vec3) (Coord, bool) {
	if g.TileSize <= 0 {
		return Coord{}, false
	}
	const half = Size / 2
	col := int(math.Floor(v.X/g.TileSize)) + half
	row := int(math.Floor(v.Z/g.TileSize)) + half
	c := Coord{Row: row, Col: col}
	return c, c.OnBoard()
}

// Extent returns the half-width of the board in world units.
func (g Grid) Extent() float64 {
	return g.TileSize * Size / 2
}
