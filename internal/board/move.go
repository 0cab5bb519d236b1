package board

import "fmt"

// MoveKind distinguishes moves that need special execution.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastle
	MoveEnPassant
)

// Move is a move of the piece on From to To. Promotion is not a distinct
// move kind: a pawn reaching the far rank signals a pending promotion that
// the rule engine resolves separately.
type Move struct {
	From Square
	To   Square
	Kind MoveKind
}

// NoMove represents an absent move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewCastle creates a castling move (the king's two-square travel).
func NewCastle(from, to Square) Move {
	return Move{From: from, To: to, Kind: MoveCastle}
}

// NewEnPassantMove creates an en passant capture onto the target square.
func NewEnPassantMove(from, to Square) Move {
	return Move{From: from, To: to, Kind: MoveEnPassant}
}

// IsCapture returns true if the move captures a piece on pos.
func (m Move) IsCapture(pos *Position) bool {
	if m.Kind == MoveEnPassant {
		return true
	}
	return !pos.IsEmpty(m.To)
}

// String returns the coordinate form of the move (e.g. "e2e4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate-form move such as "e2e4" or "b2b10" into
// its origin and destination squares. The move kind is resolved later
// against the position's legal moves.
func ParseMove(s string) (from, to Square, err error) {
	split := -1
	for i := 1; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			split = i
			break
		}
	}
	if split < 2 {
		return NoSquare, NoSquare, fmt.Errorf("invalid move: %q", s)
	}
	from, err = ParseSquare(s[:split])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	to, err = ParseSquare(s[split:])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	return from, to, nil
}
