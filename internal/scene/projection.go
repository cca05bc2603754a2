package scene

import (
	"math"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/core"
)

// Projection maps the board plane onto terminal cells, looking straight
// down with row 0 at the top of the screen.
type Projection struct {
	Grid    board.Grid
	OriginX int // Screen column of the board's left edge
	OriginY int // Screen row of the board's top edge
	CellW   int // Columns per tile
	CellH   int // Rows per tile
}

// BoardRect returns the screen area covered by the tiles.
func (p Projection) BoardRect() core.Rect {
	return core.NewRect(p.OriginX, p.OriginY, board.Size*p.CellW, board.Size*p.CellH)
}

// TileRect returns the screen area of the tile at c.
func (p Projection) TileRect(c board.Coord) core.Rect {
	return core.NewRect(p.OriginX+c.Col*p.CellW, p.OriginY+c.Row*p.CellH, p.CellW, p.CellH)
}

// WorldToScreen returns the (fractional) screen position of a world point.
// The Y component of v is ignored.
func (p Projection) WorldToScreen(v board.Vec3) (float64, float64) {
	ext := p.Grid.Extent()
	sx := float64(p.OriginX) + (v.X+ext)/p.Grid.TileSize*float64(p.CellW)
	sy := float64(p.OriginY) + (v.Z+ext)/p.Grid.TileSize*float64(p.CellH)
	return sx, sy
}

// WorldToCell returns the screen cell containing a world point.
func (p Projection) WorldToCell(v board.Vec3) (int, int) {
	sx, sy := p.WorldToScreen(v)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ScreenToWorld returns the world point at the centre of a screen cell,
// on the board plane.
func (p Projection) ScreenToWorld(x, y int) board.Vec3 {
	ext := p.Grid.Extent()
	return board.Vec3{
		X: (float64(x-p.OriginX)+0.5)/float64(p.CellW)*p.Grid.TileSize - ext,
		Z: (float64(y-p.OriginY)+0.5)/float64(p.CellH)*p.Grid.TileSize - ext,
	}
}
