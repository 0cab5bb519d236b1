package board

import "strings"

// Notation builds algebraic-style notation for a move about to be played on
// pos. Check, mate and promotion suffixes are appended by the rule engine
// once the move's consequences are known.
func Notation(pos *Position, m Move, capture bool) string {
	piece := pos.PieceAt(m.From)
	if piece.IsNone() {
		return m.String()
	}

	if m.Kind == MoveCastle {
		if m.To.File > m.From.File {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if piece.Type == Pawn {
		if capture {
			sb.WriteString(fileLetter(m.From.File))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		return sb.String()
	}

	sb.WriteByte(" PNBRQK"[piece.Type])
	sb.WriteString(disambiguation(pos, m, piece))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// PromotionSuffix returns the "=Q" style suffix for a promotion choice.
func PromotionSuffix(pt PieceType) string {
	return "=" + string(" PNBRQK"[pt])
}

// disambiguation returns the origin hint needed when another piece of the
// same kind can legally reach the destination.
func disambiguation(pos *Position, m Move, piece Piece) string {
	sameFile := false
	ambiguous := false
	for rank := 0; rank < pos.Size; rank++ {
		for file := 0; file < pos.Size; file++ {
			sq := NewSquare(file, rank)
			if sq == m.From {
				continue
			}
			other := pos.PieceAt(sq)
			if other.Type != piece.Type || other.Color != piece.Color {
				continue
			}
			for _, om := range pos.LegalMoves(sq) {
				if om.To == m.To {
					ambiguous = true
					if sq.File == m.From.File {
						sameFile = true
					}
					break
				}
			}
		}
	}
	if !ambiguous {
		return ""
	}
	if sameFile {
		return NewSquare(m.From.File, m.From.Rank).String()[1:]
	}
	return fileLetter(m.From.File)
}

func fileLetter(file int) string {
	if file >= 26 {
		return "?"
	}
	return string(rune('a' + file))
}
