package board

import (
	"fmt"
	"sort"
)

// Registry is the authoritative record of which piece stands where.
// It holds at most one piece per coordinate. It is not safe for concurrent
// use; all access must come from the single control flow that owns it.
type Registry struct {
	squares [Size][Size]Handle
	pieces  map[Handle]*Piece
	next    Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pieces: make(map[Handle]*Piece),
		next:   1,
	}
}

// PieceAt returns the piece standing on c, if any.
func (r *Registry) PieceAt(c Coord) (Piece, bool) {
	if !c.OnBoard() {
		return Piece{}, false
	}
	h := r.squares[c.Row][c.Col]
	if h == NoHandle {
		return Piece{}, false
	}
	return *r.pieces[h], true
}

// Piece returns the piece with the given handle, if it is still on the board.
func (r *Registry) Piece(h Handle) (Piece, bool) {
	p, ok := r.pieces[h]
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

// Contains reports whether the handle refers to a piece on the board.
func (r *Registry) Contains(h Handle) bool {
	_, ok := r.pieces[h]
	return ok
}

// Len returns the number of pieces on the board.
func (r *Registry) Len() int {
	return len(r.pieces)
}

// Pieces returns a snapshot of all pieces ordered by handle.
func (r *Registry) Pieces() []Piece {
	result := make([]Piece, 0, len(r.pieces))
	for _, p := range r.pieces {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Handle < result[j].Handle
	})
	return result
}

// Place creates a new piece on c and returns its handle.
// Fails with ErrOccupiedCoordinate if another piece already stands on c.
func (r *Registry) Place(t PieceType, color Color, c Coord) (Handle, error) {
	if !c.OnBoard() {
		return NoHandle, fmt.Errorf("place %s %s at %s: %w", color, t, c, ErrOffBoard)
	}
	if occupant := r.squares[c.Row][c.Col]; occupant != NoHandle {
		return NoHandle, fmt.Errorf("place %s %s at %s: %w", color, t, c, ErrOccupiedCoordinate)
	}

	h := r.next
	r.next++
	r.pieces[h] = &Piece{Handle: h, Type: t, Color: color, Pos: c}
	r.squares[c.Row][c.Col] = h
	return h, nil
}

// MoveTo reassigns the piece's position to c.
// It does not check whether c is occupied: the caller must have removed
// any previous occupant first.
func (r *Registry) MoveTo(h Handle, c Coord) error {
	p, ok := r.pieces[h]
	if !ok {
		return fmt.Errorf("move %d: %w", h, ErrUnknownPiece)
	}
	if !c.OnBoard() {
		return fmt.Errorf("move %d to %s: %w", h, c, ErrOffBoard)
	}

	if r.squares[p.Pos.Row][p.Pos.Col] == h {
		r.squares[p.Pos.Row][p.Pos.Col] = NoHandle
	}
	p.Pos = c
	r.squares[c.Row][c.Col] = h
	return nil
}

// Remove deletes the piece from the board.
func (r *Registry) Remove(h Handle) error {
	p, ok := r.pieces[h]
	if !ok {
		return fmt.Errorf("remove %d: %w", h, ErrUnknownPiece)
	}
	if r.squares[p.Pos.Row][p.Pos.Col] == h {
		r.squares[p.Pos.Row][p.Pos.Col] = NoHandle
	}
	delete(r.pieces, h)
	return nil
}
