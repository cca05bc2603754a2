package board

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Forward returns the row direction a pawn of this color advances in.
func (c Color) Forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// PieceType is the kind of a piece. Only pawns and rooks exist on this
// board; NoPieceType marks anything else.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	NoPieceType
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	default:
		return "none"
	}
}

// ParsePieceType converts a name ("pawn", "rook") to a PieceType.
func ParsePieceType(s string) PieceType {
	switch s {
	case "pawn", "Pawn", "p", "P":
		return Pawn
	case "rook", "Rook", "r", "R":
		return Rook
	default:
		return NoPieceType
	}
}

// ParseColor converts a name ("white", "black") to a Color.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "w":
		return White, true
	case "black", "Black", "b":
		return Black, true
	default:
		return White, false
	}
}

// Handle is an opaque, stable reference to a piece. It stays the same when
// the piece moves and is never reused within one registry. Zero is never
// a valid handle.
type Handle uint32

// NoHandle is the zero handle.
const NoHandle Handle = 0

// Piece is a snapshot of one piece's attributes.
type Piece struct {
	Handle Handle
	Type   PieceType
	Color  Color
	Pos    Coord
}
