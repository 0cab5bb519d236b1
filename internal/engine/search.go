package engine

import "github.com/knightsfork/varchess/internal/board"

// alphaBeta is a negamax search returning the score of pos from the side
// to move's perspective. A position with no moves scores as an immediate
// loss offset by remaining depth (faster mates are preferred) when in
// check, else zero (stalemate). Terminal detection runs before the depth
// cutoff so a depth-1 search still sees mate.
func (e *Engine) alphaBeta(pos *board.Position, depth, alpha, beta int) int {
	moves := searchMoves(pos)
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			return -(MateScore + depth)
		}
		return 0
	}

	if depth <= 0 {
		return Evaluate(pos, pos.SideToMove)
	}

	orderMoves(pos, moves)

	best := -Infinity
	for _, m := range moves {
		child := pos.Copy()
		applySearchMove(child, m)
		score := -e.alphaBeta(child, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// searchMoves is the cheaper legality filter used at interior nodes:
// pseudo-legal moves filtered only by king safety, omitting the
// castling-through-check nuance of the full rule engine filter.
func searchMoves(pos *board.Position) []board.Move {
	us := pos.SideToMove
	var moves []board.Move
	for rank := 0; rank < pos.Size; rank++ {
		for file := 0; file < pos.Size; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece.IsNone() || piece.Color != us {
				continue
			}
			for _, m := range pos.PseudoLegalMoves(sq) {
				if pos.MoveKeepsKingSafe(m) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// applySearchMove applies a move to a search copy: promotion auto-queens
// and the side to move switches. Clock bookkeeping is skipped; the search
// horizon is far short of the draw clock.
func applySearchMove(pos *board.Position, m board.Move) {
	piece := pos.PieceAt(m.From)
	pos.Apply(m)
	if piece.Type == board.Pawn && m.To.RelativeRank(piece.Color, pos.Size) == pos.Size-1 {
		pos.SetPiece(board.Piece{Type: board.Queen, Color: piece.Color, Moved: true}, m.To)
	}
	pos.SideToMove = pos.SideToMove.Other()
}
