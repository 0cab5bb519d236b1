package board

import (
	"fmt"
	"math/rand"
)

// NewPosition creates a starting position of the given size and setup mode.
func NewPosition(size int, mode SetupMode) (*Position, error) {
	p, err := Empty(size)
	if err != nil {
		return nil, err
	}
	p.Setup = mode

	switch mode {
	case SetupCustom:
		// Empty board; pieces arrive via transcript or FEN import.
		return p, nil

	case SetupClassic, SetupShuffle:
		if size < 4 {
			return nil, fmt.Errorf("setup %s needs a board of at least 4, got %d", mode, size)
		}
		row := backRank(size)
		if mode == SetupShuffle {
			shuffleRank(row)
		}
		placeRank(p, 0, White, row)
		placeRank(p, size-1, Black, row)
		placePawns(p, 1, White)
		placePawns(p, size-2, Black)

	case SetupThreeRanks:
		if size < 7 {
			return nil, fmt.Errorf("setup %s needs a board of at least 7, got %d", mode, size)
		}
		row := backRank(size)
		minors := minorRank(size)
		placeRank(p, 0, White, row)
		placeRank(p, 1, White, minors)
		placePawns(p, 2, White)
		placeRank(p, size-1, Black, row)
		placeRank(p, size-2, Black, minors)
		placePawns(p, size-3, Black)
		p.PawnLeap = 3

	default:
		return nil, fmt.Errorf("unknown setup mode %d", mode)
	}

	return p, nil
}

// backRank builds the home rank for a board of the given width: a
// rook-knight-bishop cycle growing inward from each edge, with the king at
// size/2 and the queen beside it. For size 8 this yields the standard
// RNBQKBNR array.
func backRank(size int) []PieceType {
	cycle := [3]PieceType{Rook, Knight, Bishop}
	row := make([]PieceType, size)
	for i := 0; i < size/2; i++ {
		row[i] = cycle[i%3]
		row[size-1-i] = cycle[i%3]
	}
	if size%2 == 1 {
		row[size/2] = cycle[(size/2)%3]
	}
	row[size/2] = King
	row[size/2-1] = Queen
	return row
}

// minorRank builds the second piece rank of the dense three-ranks setup:
// alternating knights and bishops.
func minorRank(size int) []PieceType {
	row := make([]PieceType, size)
	for i := range row {
		if i%2 == 0 {
			row[i] = Knight
		} else {
			row[i] = Bishop
		}
	}
	return row
}

// shuffleRank permutes a back rank in place. The king is kept off the flank
// files so the castling scan finds a rook on both sides.
func shuffleRank(row []PieceType) {
	rand.Shuffle(len(row), func(i, j int) {
		row[i], row[j] = row[j], row[i]
	})
	for i, pt := range row {
		if pt != King {
			continue
		}
		if i == 0 || i == len(row)-1 {
			mid := len(row) / 2
			row[i], row[mid] = row[mid], row[i]
		}
		break
	}
}

func placeRank(p *Position, rank int, c Color, row []PieceType) {
	for file, pt := range row {
		if pt != NoPieceType {
			p.SetPiece(NewPiece(pt, c), NewSquare(file, rank))
		}
	}
}

func placePawns(p *Position, rank int, c Color) {
	for file := 0; file < p.Size; file++ {
		p.SetPiece(NewPiece(Pawn, c), NewSquare(file, rank))
	}
}
