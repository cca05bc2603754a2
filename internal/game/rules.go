package game

import "github.com/vovakirdan/tui-chessboard/internal/board"

// MoveRule reports whether piece p may move to target.
// Rules only look at geometry: they never inspect other pieces.
type MoveRule func(p board.Piece, target board.Coord) bool

// rules maps each modelled piece type to its movement rule.
// Types without an entry cannot move.
var rules = map[board.PieceType]MoveRule{
	board.Pawn: pawnRule,
	board.Rook: rookRule,
}

// IsLegal reports whether p may move to target.
// Moving onto the piece's own square is never legal.
func IsLegal(p board.Piece, target board.Coord) bool {
	if !target.OnBoard() || target == p.Pos {
		return false
	}
	rule, ok := rules[p.Type]
	if !ok {
		return false
	}
	return rule(p, target)
}

// pawnRule allows exactly one step forward in the same column.
// There is no diagonal capture: a pawn captures whatever stands in front of it.
func pawnRule(p board.Piece, target board.Coord) bool {
	return target.Col == p.Pos.Col && target.Row == p.Pos.Row+p.Color.Forward()
}

// rookRule allows any square sharing the row or the column.
// Intervening pieces do not block the path.
func rookRule(p board.Piece, target board.Coord) bool {
	return target.Row == p.Pos.Row || target.Col == p.Pos.Col
}
