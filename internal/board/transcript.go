package board

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeTranscript serializes the piece placement as semicolon-separated
// "file,rank,code,moved" records in rank-major order. The transcript is the
// lossless wire form used to rehydrate a board defined by a remote peer; it
// preserves Moved flags, which the FEN form does not.
func (p *Position) EncodeTranscript() string {
	var records []string
	for rank := 0; rank < p.Size; rank++ {
		for file := 0; file < p.Size; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece.IsNone() {
				continue
			}
			moved := 0
			if piece.Moved {
				moved = 1
			}
			records = append(records, fmt.Sprintf("%d,%d,%d,%d", file, rank, piece.Code(), moved))
		}
	}
	return strings.Join(records, ";")
}

// ParseTranscript decodes a transcript string onto a fresh empty position
// of the given size. Records with out-of-range squares, unknown piece codes
// or duplicate occupancy are rejected.
func ParseTranscript(s string, size int) (*Position, error) {
	pos, err := Empty(size)
	if err != nil {
		return nil, err
	}

	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
	if s == "" {
		return pos, nil
	}

	for _, record := range strings.Split(s, ";") {
		fields := strings.Split(record, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed transcript record %q", record)
		}
		nums := make([]int, 4)
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("malformed transcript record %q", record)
			}
			nums[i] = n
		}

		sq := NewSquare(nums[0], nums[1])
		if !pos.InBounds(sq) {
			return nil, fmt.Errorf("transcript square %s outside board of size %d", sq, size)
		}
		piece := PieceFromCode(nums[2])
		if piece.IsNone() {
			return nil, fmt.Errorf("unknown piece code %d in record %q", nums[2], record)
		}
		switch nums[3] {
		case 0:
		case 1:
			piece.Moved = true
		default:
			return nil, fmt.Errorf("invalid moved flag %d in record %q", nums[3], record)
		}
		if !pos.IsEmpty(sq) {
			return nil, fmt.Errorf("duplicate piece on %s", sq)
		}
		pos.SetPiece(piece, sq)
	}

	return pos, nil
}
