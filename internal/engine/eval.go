package engine

import "github.com/knightsfork/varchess/internal/board"

// Positional term weights, in centipawns.
const (
	pawnAdvanceBonus   = 4  // per rank advanced
	knightEdgePenalty  = 15 // knight on a board edge
	rookSeventhBonus   = 20 // rook on the opponent's second-to-last rank
	queenHomePenalty   = 10 // queen not yet developed
	kingHomeBonus      = 20 // king still on its home rank
	kingAdvancePenalty = 6  // per rank the king has strayed, capped
)

// Evaluate returns the static evaluation of pos from the given side's
// perspective: white-positive material plus positional bonuses, then
// sign-flipped. All terms are functions of (file, rank, size) so any board
// size evaluates without lookup tables.
func Evaluate(pos *board.Position, us board.Color) int {
	score := 0
	for rank := 0; rank < pos.Size; rank++ {
		for file := 0; file < pos.Size; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece.IsNone() {
				continue
			}
			v := piece.Value() + positional(piece, sq, pos.Size)
			if piece.Color == board.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	if us == board.Black {
		return -score
	}
	return score
}

// positional returns the piece-square bonus for a piece on sq.
func positional(piece board.Piece, sq board.Square, size int) int {
	rel := sq.RelativeRank(piece.Color, size)

	switch piece.Type {
	case board.Pawn:
		bonus := pawnAdvanceBonus * rel
		bonus += max(0, 8-2*fileCenterDistance(sq.File, size))
		return bonus

	case board.Knight:
		bonus := max(-12, 12-2*centerDistance(sq, size))
		if sq.File == 0 || sq.File == size-1 || sq.Rank == 0 || sq.Rank == size-1 {
			bonus -= knightEdgePenalty
		}
		return bonus

	case board.Bishop:
		return max(-8, 8-centerDistance(sq, size))

	case board.Rook:
		if rel == size-2 {
			return rookSeventhBonus
		}
		return 0

	case board.Queen:
		if !piece.Moved {
			return -queenHomePenalty
		}
		return 0

	case board.King:
		if rel == 0 {
			return kingHomeBonus
		}
		return -kingAdvancePenalty * min(rel, 6)
	}

	return 0
}

// fileCenterDistance returns twice the distance from the file to the
// central file(s), integral for both odd and even sizes.
func fileCenterDistance(file, size int) int {
	d := 2*file - (size - 1)
	if d < 0 {
		return -d
	}
	return d
}
