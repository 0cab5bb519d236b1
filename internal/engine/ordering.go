package engine

import (
	"sort"

	"github.com/knightsfork/varchess/internal/board"
)

// orderMoves sorts moves by descending heuristic score before recursing,
// to tighten alpha-beta pruning. Captures are scored MVV-LVA (most
// valuable victim, least valuable attacker); every destination pays a
// small penalty for distance from the board center.
func orderMoves(pos *board.Position, moves []board.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = moveScore(pos, m)
	}
	sort.Stable(&byScore{moves: moves, scores: scores})
}

// moveScore returns the ordering heuristic for a single move:
// 10×victim − attacker for captures, minus the centrality penalty.
func moveScore(pos *board.Position, m board.Move) int {
	score := 0
	if m.IsCapture(pos) {
		victim := board.PieceValue[board.Pawn]
		if m.Kind != board.MoveEnPassant {
			victim = pos.PieceAt(m.To).Value()
		}
		score = 10*victim - pos.PieceAt(m.From).Value()
	}
	return score - centerDistance(m.To, pos.Size)
}

// centerDistance returns twice the Chebyshev distance from sq to the board
// center, integral for both odd and even sizes.
func centerDistance(sq board.Square, size int) int {
	c := size - 1
	df := 2*sq.File - c
	if df < 0 {
		df = -df
	}
	dr := 2*sq.Rank - c
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

type byScore struct {
	moves  []board.Move
	scores []int
}

func (s *byScore) Len() int           { return len(s.moves) }
func (s *byScore) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s *byScore) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
