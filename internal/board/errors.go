package board

import "errors"

var (
	ErrOccupiedCoordinate = errors.New("occupied coordinate")
	ErrOffBoard           = errors.New("coordinate off board")
	ErrUnknownPiece       = errors.New("unknown piece")
)
