package scene

import (
	"sort"
	"strconv"
	"unicode"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/core"
)

// Render draws the scene into dst. The screen is expected to be cleared.
func (s *Scene) Render(dst *core.Screen) {
	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	s.drawTiles(dst)
	if s.opts.View.Labels {
		s.drawLabels(dst)
	}
	if s.showCursor {
		s.drawCursor(dst)
	}
	s.drawPieces(dst)
	s.drawEffects(dst)
}

func (s *Scene) renderTooSmall(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Terminal too small", core.ColorYellow)
	need := strconv.Itoa(board.Size*s.opts.View.CellWidth+labelCols+2*minWidthPad) + "x" +
		strconv.Itoa(board.Size*s.opts.View.CellHeight+labelRows+titleRows)
	dst.DrawTextCentered(cy+1, "Need at least "+need, core.ColorGray)
}

func (s *Scene) drawTiles(dst *core.Screen) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := board.C(row, col)
			bg := s.opts.Theme.LightTile
			if board.TileShadeAt(c) == board.Dark {
				bg = s.opts.Theme.DarkTile
			}
			dst.FillRect(s.proj.TileRect(c), bg)
		}
	}
}

func (s *Scene) drawLabels(dst *core.Screen) {
	for col := 0; col < board.Size; col++ {
		r := s.proj.TileRect(board.C(0, col))
		cx, _ := r.Center()
		dst.DrawText(cx, s.proj.OriginY-1, strconv.Itoa(col), core.ColorGray)
	}
	for row := 0; row < board.Size; row++ {
		r := s.proj.TileRect(board.C(row, 0))
		_, cy := r.Center()
		dst.DrawText(s.proj.OriginX-2, cy, strconv.Itoa(row), core.ColorGray)
	}
}

// drawCursor puts corner marks on the tile under the keyboard cursor.
func (s *Scene) drawCursor(dst *core.Screen) {
	r := s.proj.TileRect(s.cursor)
	fg := s.opts.Theme.Cursor
	dst.SetFg(r.X, r.Y, '┌', fg)
	dst.SetFg(r.Right()-1, r.Y, '┐', fg)
	dst.SetFg(r.X, r.Bottom()-1, '└', fg)
	dst.SetFg(r.Right()-1, r.Bottom()-1, '┘', fg)
}

func (s *Scene) drawPieces(dst *core.Screen) {
	// Stable draw order so overlapping sprites render the same every frame
	handles := make([]board.Handle, 0, len(s.sprites))
	for h := range s.sprites {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		sp := s.sprites[h]
		fg := s.opts.Theme.White
		if sp.color == board.Black {
			fg = s.opts.Theme.Black
		}

		r := s.pieceRect(sp)
		if sp.highlighted {
			dst.FillRect(r, s.opts.Theme.Highlight)
		}
		cx, cy := s.proj.WorldToCell(sp.pos)
		dst.SetFg(cx, cy, s.glyph(sp), fg)
	}
}

func (s *Scene) drawEffects(dst *core.Screen) {
	for _, e := range s.effects {
		g := e.glyph()
		for _, p := range e.particles {
			x, y := s.proj.WorldToCell(board.Vec3{X: p.x, Z: p.z})
			dst.SetFg(x, y, g, s.opts.Theme.Particle)
		}
	}
}

// glyph returns the character for a sprite.
func (s *Scene) glyph(sp *sprite) rune {
	if s.opts.View.ASCII {
		r := 'P'
		if sp.kind == board.Rook {
			r = 'R'
		}
		if sp.color == board.Black {
			r = unicode.ToLower(r)
		}
		return r
	}
	if sp.kind == board.Rook {
		return '♜'
	}
	return '♟'
}
