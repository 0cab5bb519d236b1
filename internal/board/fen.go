package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the extended FEN string for the classic 8×8 starting position.
const StartFEN = "8:rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses an extended FEN string into a fresh Position. The format
// is standard FEN prefixed with "size:"; a missing prefix defaults to 8 for
// compatibility with standard notation. Digit runs encode consecutive empty
// squares and may span multiple digits on large boards.
//
// Castling rights, en passant and clock fields are ignored on import:
// castling rights are derived from Moved flags, and importing resets the
// turn and clock state. The live position is never touched; a failed parse
// leaves the caller's state intact.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, errors.New("empty position string")
	}

	size := 8
	body := fen
	if i := strings.IndexByte(fen, ':'); i >= 0 {
		n, err := strconv.Atoi(fen[:i])
		if err != nil {
			return nil, fmt.Errorf("invalid size prefix %q", fen[:i])
		}
		size = n
		body = fen[i+1:]
	}

	pos, err := Empty(size)
	if err != nil {
		return nil, err
	}

	parts := strings.Fields(body)
	if len(parts) == 0 {
		return nil, errors.New("missing piece placement")
	}

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			pos.SideToMove = White
		case "b":
			pos.SideToMove = Black
		default:
			return nil, fmt.Errorf("invalid side to move: %q", parts[1])
		}
	}

	return pos, nil
}

// parsePlacement fills the grid from the rank-by-rank placement token,
// topmost rank first.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != pos.Size {
		return fmt.Errorf("rank count %d does not match board size %d", len(ranks), pos.Size)
	}

	for i, rankStr := range ranks {
		rank := pos.Size - 1 - i
		file := 0
		run := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '0' && c <= '9' {
				run = run*10 + int(c-'0')
				continue
			}
			file += run
			run = 0
			piece := PieceFromChar(c)
			if piece.IsNone() {
				return fmt.Errorf("invalid piece character %q in rank %d", c, rank+1)
			}
			if file >= pos.Size {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			pos.SetPiece(piece, NewSquare(file, rank))
			file++
		}
		file += run

		if file != pos.Size {
			return fmt.Errorf("rank %d has %d squares, board size is %d", rank+1, file, pos.Size)
		}
	}

	return nil
}

// ToFEN returns the extended FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(p.Size))
	sb.WriteByte(':')

	for rank := p.Size - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < p.Size; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	// En passant, half-move and full-move fields are placeholders.
	sb.WriteString(" - 0 1")

	return sb.String()
}

// castlingString derives the castling-rights string by scanning each back
// rank for an unmoved king flanked by an unmoved same-color rook on each
// side. Rights are never stored; they follow from the Moved flags.
func (p *Position) castlingString() string {
	var sb strings.Builder
	emit := func(c Color, rank int, kingside, queenside byte) {
		ksq := NoSquare
		for file := 0; file < p.Size; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece.Type == King && piece.Color == c && !piece.Moved {
				ksq = NewSquare(file, rank)
				break
			}
		}
		if ksq == NoSquare {
			return
		}
		if p.castlingRookAt(ksq, c, 1) {
			sb.WriteByte(kingside)
		}
		if p.castlingRookAt(ksq, c, -1) {
			sb.WriteByte(queenside)
		}
	}
	emit(White, 0, 'K', 'Q')
	emit(Black, p.Size-1, 'k', 'q')
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// castlingRookAt reports whether an unmoved rook of the given color sits
// anywhere outward from ksq in direction d. Pieces in between do not void
// the right; they may yet move out of the way.
func (p *Position) castlingRookAt(ksq Square, c Color, d int) bool {
	for f := ksq.File + d; f >= 0 && f < p.Size; f += d {
		occ := p.PieceAt(NewSquare(f, ksq.Rank))
		if occ.Type == Rook && occ.Color == c && !occ.Moved {
			return true
		}
	}
	return false
}
