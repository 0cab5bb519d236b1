// Package engine implements the adversarial search opponent: depth-limited
// negamax with alpha-beta pruning over ephemeral board copies.
package engine

import (
	"math/rand"
	"time"

	"github.com/knightsfork/varchess/internal/board"
)

// Search score bounds.
const (
	Infinity  = 30000
	MateScore = 29000
)

// easyRandomChance is the probability that Easy bypasses search entirely
// and plays a uniformly random legal move.
const easyRandomChance = 0.3

// Difficulty selects the search depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Depth returns the search depth in plies for the difficulty.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	default:
		return "hard"
	}
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return Medium, false
	}
}

// Engine is the search opponent. It operates on snapshots only and never
// mutates the live position, so a caller may run it off the game thread.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine with a time-seeded tie-break source.
func New() *Engine {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates an engine with a deterministic tie-break source.
func NewWithSeed(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// BestMove searches for the best move for the given color at the given
// difficulty. Top-level candidates use the full legality filter; ties on
// the maximal score are broken uniformly at random. Returns NoMove when no
// legal move exists.
func (e *Engine) BestMove(pos *board.Position, us board.Color, d Difficulty) board.Move {
	root := pos.Copy()
	root.SideToMove = us

	moves := root.AllLegalMoves(us)
	if len(moves) == 0 {
		return board.NoMove
	}

	if d == Easy && e.rng.Float64() < easyRandomChance {
		return moves[e.rng.Intn(len(moves))]
	}

	orderMoves(root, moves)

	depth := d.Depth()
	best := -Infinity - 1
	var ties []board.Move
	for _, m := range moves {
		child := root.Copy()
		applySearchMove(child, m)
		score := -e.alphaBeta(child, depth-1, -Infinity, Infinity)
		if score > best {
			best = score
			ties = ties[:0]
		}
		if score == best {
			ties = append(ties, m)
		}
	}

	return ties[e.rng.Intn(len(ties))]
}

// Perft counts the leaf nodes of the legal move tree to the given depth,
// for pinning the move generator. Promotions count once (auto-queen).
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.AllLegalMoves(pos.SideToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		applySearchMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
