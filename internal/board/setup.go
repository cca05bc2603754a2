package board

import "fmt"

// Placement is one piece of an initial layout.
type Placement struct {
	Type  PieceType
	Color Color
	At    Coord
}

// Setup is an ordered initial layout.
type Setup []Placement

// StandardSetup returns the default layout: white pawns on row 1, black
// pawns on row 6 and a rook in each corner.
func StandardSetup() Setup {
	s := make(Setup, 0, 20)
	for col := 0; col < Size; col++ {
		s = append(s, Placement{Type: Pawn, Color: White, At: C(1, col)})
	}
	for col := 0; col < Size; col++ {
		s = append(s, Placement{Type: Pawn, Color: Black, At: C(6, col)})
	}
	s = append(s,
		Placement{Type: Rook, Color: White, At: C(0, 0)},
		Placement{Type: Rook, Color: White, At: C(0, 7)},
		Placement{Type: Rook, Color: Black, At: C(7, 0)},
		Placement{Type: Rook, Color: Black, At: C(7, 7)},
	)
	return s
}

// Apply places every piece of the setup into r, calling onPlace for each
// piece created. The first failure aborts the setup.
func (s Setup) Apply(r *Registry, onPlace func(Piece)) error {
	for i, pl := range s {
		h, err := r.Place(pl.Type, pl.Color, pl.At)
		if err != nil {
			return fmt.Errorf("setup entry %d: %w", i, err)
		}
		if onPlace != nil {
			p, _ := r.Piece(h)
			onPlace(p)
		}
	}
	return nil
}

// With returns a copy of the setup with extra placements appended.
func (s Setup) With(extra ...Placement) Setup {
	out := make(Setup, 0, len(s)+len(extra))
	out = append(out, s...)
	return append(out, extra...)
}
