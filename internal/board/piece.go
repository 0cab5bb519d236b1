package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
// NoPieceType is the zero value so an empty grid cell needs no initialization.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceValue returns the material value of each piece type in centipawns,
// indexed by PieceType.
var PieceValue = [7]int{0, 100, 320, 330, 500, 900, 20000}

// Value returns the material value of the piece type in centipawns.
func (pt PieceType) Value() int {
	return PieceValue[pt]
}

// Piece is a piece occupying a grid cell. The grid is the single source of
// truth for piece placement; a Piece carries no coordinates of its own.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

// NoPiece is the empty cell value. It is the zero Piece, so a fresh grid
// cell and a vacated one compare equal.
var NoPiece = Piece{}

// NewPiece creates an unmoved piece of the given type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece{Type: pt, Color: c}
}

// IsNone returns true if the piece is the empty cell value.
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsNone() {
		return " "
	}
	chars := " PNBRQK"
	c := chars[p.Type]
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to an unmoved Piece.
func PieceFromChar(c byte) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(Pawn, color)
	case 'N':
		return NewPiece(Knight, color)
	case 'B':
		return NewPiece(Bishop, color)
	case 'R':
		return NewPiece(Rook, color)
	case 'Q':
		return NewPiece(Queen, color)
	case 'K':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}

// Code returns the transcript wire code for the piece: pieceType + color*6,
// with Pawn=0 through King=5.
func (p Piece) Code() int {
	return int(p.Type-Pawn) + int(p.Color)*6
}

// PieceFromCode converts a transcript wire code back into a Piece.
func PieceFromCode(code int) Piece {
	if code < 0 || code > 11 {
		return NoPiece
	}
	return NewPiece(Pawn+PieceType(code%6), Color(code/6))
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type]
}
