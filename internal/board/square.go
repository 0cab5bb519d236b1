// Package board implements a variable-size chess board on a square-indexed grid.
package board

import "fmt"

// Board size limits.
const (
	MinBoardSize = 3
	MaxBoardSize = 99
)

// Square identifies a board cell by 0-indexed file and rank.
type Square struct {
	File int
	Rank int
}

// NoSquare represents an invalid or absent square.
var NoSquare = Square{-1, -1}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// IsValid returns true if the square lies on a board of the given size.
func (sq Square) IsValid(size int) bool {
	return sq.File >= 0 && sq.File < size && sq.Rank >= 0 && sq.Rank < size
}

// String returns algebraic notation for the square (e.g. "e4").
// Files beyond 'z' cannot be lettered and fall back to a numeric form.
func (sq Square) String() string {
	if sq.File < 0 || sq.Rank < 0 {
		return "-"
	}
	if sq.File >= 26 {
		return fmt.Sprintf("(%d,%d)", sq.File, sq.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File, sq.Rank+1)
}

// ParseSquare parses algebraic notation (e.g. "e4", "c12") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	file := int(s[0] - 'a')
	rank := 0
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return NoSquare, fmt.Errorf("invalid square: %q", s)
		}
		rank = rank*10 + int(s[i]-'0')
	}
	if rank < 1 || rank > MaxBoardSize {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(file, rank-1), nil
}

// RelativeRank returns the rank from a given color's perspective on a board
// of the given size. For White rank 0 is the home rank; for Black it is the
// far rank.
func (sq Square) RelativeRank(c Color, size int) int {
	if c == White {
		return sq.Rank
	}
	return size - 1 - sq.Rank
}
