package board

import (
	"fmt"
	"strings"
)

// HalfMoveLimit is the half-move clock value that forces a draw.
// Double the standard 50-move rule, reflecting larger boards.
const HalfMoveLimit = 100

// SetupMode selects the starting arrangement of a new position.
type SetupMode int

const (
	SetupClassic SetupMode = iota
	SetupThreeRanks
	SetupShuffle
	SetupCustom
)

// String returns the setup mode name.
func (m SetupMode) String() string {
	switch m {
	case SetupClassic:
		return "classic"
	case SetupThreeRanks:
		return "threeranks"
	case SetupShuffle:
		return "shuffle"
	case SetupCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseSetupMode parses a setup mode name.
func ParseSetupMode(s string) (SetupMode, error) {
	switch strings.ToLower(s) {
	case "classic":
		return SetupClassic, nil
	case "threeranks":
		return SetupThreeRanks, nil
	case "shuffle":
		return SetupShuffle, nil
	case "custom":
		return SetupCustom, nil
	default:
		return SetupClassic, fmt.Errorf("unknown setup mode: %q", s)
	}
}

// Position represents a complete game position on a size×size board.
// The grid owns the pieces; moving a piece transfers the grid cell.
type Position struct {
	Size int
	grid []Piece

	SideToMove     Color
	EnPassant      Square // target square for en passant, NoSquare if none
	HalfMoveClock  int    // plies since last pawn move or capture
	FullMoveNumber int    // starts at 1
	Setup          SetupMode
	PawnLeap       int // pawn first-move distance (2 normally, 3 in threeranks)
}

// Empty creates an empty position of the given size.
func Empty(size int) (*Position, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("board size %d outside [%d, %d]", size, MinBoardSize, MaxBoardSize)
	}
	return &Position{
		Size:           size,
		grid:           make([]Piece, size*size),
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		Setup:          SetupCustom,
		PawnLeap:       2,
	}, nil
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	np := *p
	np.grid = make([]Piece, len(p.grid))
	copy(np.grid, p.grid)
	return &np
}

func (p *Position) index(sq Square) int {
	return sq.Rank*p.Size + sq.File
}

// InBounds returns true if the square lies on this board.
func (p *Position) InBounds(sq Square) bool {
	return sq.IsValid(p.Size)
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !p.InBounds(sq) {
		return NoPiece
	}
	return p.grid[p.index(sq)]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq).IsNone()
}

// SetPiece places a piece on a square, replacing any occupant.
func (p *Position) SetPiece(piece Piece, sq Square) {
	if !p.InBounds(sq) {
		return
	}
	p.grid[p.index(sq)] = piece
}

// RemovePiece removes and returns the piece at the given square.
func (p *Position) RemovePiece(sq Square) Piece {
	if !p.InBounds(sq) {
		return NoPiece
	}
	i := p.index(sq)
	piece := p.grid[i]
	p.grid[i] = NoPiece
	return piece
}

// MovePiece transfers the piece on from to to, returning any captured piece.
// The piece's Moved flag is set.
func (p *Position) MovePiece(from, to Square) Piece {
	piece := p.RemovePiece(from)
	if piece.IsNone() {
		return NoPiece
	}
	piece.Moved = true
	captured := p.PieceAt(to)
	p.SetPiece(piece, to)
	return captured
}

// KingSquare returns the square of the given color's king, or NoSquare if
// no king is on the board.
func (p *Position) KingSquare(c Color) Square {
	for rank := 0; rank < p.Size; rank++ {
		for file := 0; file < p.Size; file++ {
			sq := NewSquare(file, rank)
			piece := p.grid[p.index(sq)]
			if piece.Type == King && piece.Color == c {
				return sq
			}
		}
	}
	return NoSquare
}

// Validate checks that the position has exactly one king of each color.
func (p *Position) Validate() error {
	var kings [2]int
	for _, piece := range p.grid {
		if piece.Type == King {
			kings[piece.Color]++
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, has %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, has %d", kings[Black])
	}
	return nil
}

// Material returns the material balance in centipawns, positive for White.
// Kings are excluded.
func (p *Position) Material() int {
	score := 0
	for _, piece := range p.grid {
		if piece.IsNone() || piece.Type == King {
			continue
		}
		if piece.Color == White {
			score += piece.Value()
		} else {
			score -= piece.Value()
		}
	}
	return score
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := p.Size - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%2d  ", rank+1)
		for file := 0; file < p.Size; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece.IsNone() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n    ")
	for file := 0; file < p.Size; file++ {
		if file < 26 {
			fmt.Fprintf(&sb, "%c ", 'a'+file)
		} else {
			sb.WriteString("? ")
		}
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "\nSide to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}
