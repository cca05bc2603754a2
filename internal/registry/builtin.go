package registry

import "github.com/vovakirdan/tui-chessboard/internal/board"

func init() {
	Register("standard", "Standard", board.StandardSetup)

	// A black pawn waits in front of the white d-pawn so the first move
	// can be a capture.
	Register("capture-demo", "Capture Demo", func() board.Setup {
		return board.StandardSetup().With(board.Placement{
			Type: board.Pawn, Color: board.Black, At: board.C(2, 3),
		})
	})

	Register("rooks-only", "Rooks Only", func() board.Setup {
		var s board.Setup
		for _, pl := range board.StandardSetup() {
			if pl.Type == board.Rook {
				s = append(s, pl)
			}
		}
		return s
	})
}
