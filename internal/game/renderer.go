package game

import "github.com/vovakirdan/tui-chessboard/internal/board"

// Renderer receives visual commands from the controller. All commands are
// fire-and-forget: the controller never reads anything back, and the
// renderer must not be treated as a source of truth for piece state.
type Renderer interface {
	// PlaceNewPiece adds a piece to the scene. Used during setup only.
	PlaceNewPiece(h board.Handle, t board.PieceType, c board.Color, pos board.Vec3)

	// HighlightSelected marks a piece as the current selection.
	HighlightSelected(h board.Handle)

	// ClearHighlight removes the selection mark from a piece.
	ClearHighlight(h board.Handle)

	// Reposition moves a piece to a new world position.
	Reposition(h board.Handle, pos board.Vec3)

	// RemoveFromScene deletes a captured piece.
	RemoveFromScene(h board.Handle)

	// SpawnCaptureEffect starts a self-contained capture animation at pos.
	SpawnCaptureEffect(pos board.Vec3)
}

// NopRenderer discards every command.
type NopRenderer struct{}

func (NopRenderer) PlaceNewPiece(board.Handle, board.PieceType, board.Color, board.Vec3) {}
func (NopRenderer) HighlightSelected(board.Handle)                                       {}
func (NopRenderer) ClearHighlight(board.Handle)                                          {}
func (NopRenderer) Reposition(board.Handle, board.Vec3)                                  {}
func (NopRenderer) RemoveFromScene(board.Handle)                                         {}
func (NopRenderer) SpawnCaptureEffect(board.Vec3)                                        {}
