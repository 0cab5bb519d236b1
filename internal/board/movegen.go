package board

// Direction vectors as (file, rank) offsets.
var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs    = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// pawnDir returns the rank direction a pawn of the given color advances in.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// epVictimSquare returns the square of the pawn captured en passant when a
// pawn of the given color lands on target: one rank beyond the target in
// the victim's direction of travel.
func epVictimSquare(target Square, capturer Color) Square {
	return NewSquare(target.File, target.Rank-pawnDir(capturer))
}

// PseudoLegalMoves returns the moves legal by piece geometry and occupancy
// alone for the piece on sq, ignoring king safety. Castling candidates and
// en passant captures are included.
func (p *Position) PseudoLegalMoves(sq Square) []Move {
	return p.pseudoMoves(sq, true)
}

func (p *Position) pseudoMoves(sq Square, withCastling bool) []Move {
	piece := p.PieceAt(sq)
	switch piece.Type {
	case Pawn:
		return p.pawnMoves(sq, piece)
	case Knight:
		return p.stepMoves(sq, piece, knightOffsets[:])
	case Bishop:
		return p.slideMoves(sq, piece, bishopDirs[:])
	case Rook:
		return p.slideMoves(sq, piece, rookDirs[:])
	case Queen:
		return p.slideMoves(sq, piece, allDirs[:])
	case King:
		moves := p.stepMoves(sq, piece, allDirs[:])
		if withCastling {
			moves = append(moves, p.castleCandidates(sq, piece)...)
		}
		return moves
	}
	return nil
}

// stepMoves generates fixed-offset moves filtered by occupancy.
func (p *Position) stepMoves(sq Square, piece Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, off := range offsets {
		to := NewSquare(sq.File+off[0], sq.Rank+off[1])
		if !p.InBounds(to) {
			continue
		}
		if occ := p.PieceAt(to); occ.IsNone() || occ.Color != piece.Color {
			moves = append(moves, NewMove(sq, to))
		}
	}
	return moves
}

// slideMoves walks each direction until blocked, including the first
// enemy-occupied square. There is no range limit.
func (p *Position) slideMoves(sq Square, piece Piece, dirs [][2]int) []Move {
	var moves []Move
	for _, dir := range dirs {
		to := NewSquare(sq.File+dir[0], sq.Rank+dir[1])
		for p.InBounds(to) {
			occ := p.PieceAt(to)
			if occ.IsNone() {
				moves = append(moves, NewMove(sq, to))
				to = NewSquare(to.File+dir[0], to.Rank+dir[1])
				continue
			}
			if occ.Color != piece.Color {
				moves = append(moves, NewMove(sq, to))
			}
			break
		}
	}
	return moves
}

// pawnMoves generates pawn pushes, the first-move leap, diagonal captures
// and the en passant capture. Promotion is signaled by reaching the far
// rank, not generated as a distinct move.
func (p *Position) pawnMoves(sq Square, piece Piece) []Move {
	var moves []Move
	dir := pawnDir(piece.Color)

	fwd := NewSquare(sq.File, sq.Rank+dir)
	if p.InBounds(fwd) && p.IsEmpty(fwd) {
		moves = append(moves, NewMove(sq, fwd))

		if !piece.Moved {
			for dist := 2; dist <= p.PawnLeap; dist++ {
				to := NewSquare(sq.File, sq.Rank+dir*dist)
				if !p.InBounds(to) || !p.IsEmpty(to) {
					break
				}
				moves = append(moves, NewMove(sq, to))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := NewSquare(sq.File+df, sq.Rank+dir)
		if !p.InBounds(to) {
			continue
		}
		if occ := p.PieceAt(to); !occ.IsNone() && occ.Color != piece.Color {
			moves = append(moves, NewMove(sq, to))
		}
	}

	if p.EnPassant != NoSquare &&
		p.EnPassant.Rank == sq.Rank+dir &&
		abs(p.EnPassant.File-sq.File) == 1 {
		victim := p.PieceAt(epVictimSquare(p.EnPassant, piece.Color))
		if victim.Type == Pawn && victim.Color == piece.Color.Other() {
			moves = append(moves, NewEnPassantMove(sq, p.EnPassant))
		}
	}

	return moves
}

// castleCandidates scans outward along the king's rank for the first
// non-empty square on each side. A castle is offered only if that piece is
// a same-color, never-moved rook and every square strictly between king and
// rook is empty. The rook need not sit in a corner; the king always travels
// two files toward it.
func (p *Position) castleCandidates(sq Square, king Piece) []Move {
	if king.Moved {
		return nil
	}
	var moves []Move
	for _, d := range [2]int{-1, 1} {
		for f := sq.File + d; f >= 0 && f < p.Size; f += d {
			occ := p.PieceAt(NewSquare(f, sq.Rank))
			if occ.IsNone() {
				continue
			}
			if occ.Type == Rook && occ.Color == king.Color && !occ.Moved {
				rookSq := NewSquare(f, sq.Rank)
				dest := NewSquare(sq.File+2*d, sq.Rank)
				if p.InBounds(dest) && (dest == rookSq || p.IsEmpty(dest)) {
					moves = append(moves, NewCastle(sq, dest))
				}
			}
			break
		}
	}
	return moves
}

// Apply executes a move on the grid: resolves the en passant capture,
// relocates the castling rook alongside the king, moves the piece, and
// sets or clears the en passant target. Side to move, clocks and promotion
// are the rule engine's concern. Returns the captured piece, if any.
func (p *Position) Apply(m Move) Piece {
	piece := p.PieceAt(m.From)
	if piece.IsNone() {
		return NoPiece
	}

	captured := NoPiece
	switch m.Kind {
	case MoveEnPassant:
		captured = p.RemovePiece(epVictimSquare(m.To, piece.Color))
	case MoveCastle:
		d := 1
		if m.To.File < m.From.File {
			d = -1
		}
		for f := m.From.File + d; f >= 0 && f < p.Size; f += d {
			rookSq := NewSquare(f, m.From.Rank)
			if occ := p.PieceAt(rookSq); !occ.IsNone() {
				rook := p.RemovePiece(rookSq)
				rook.Moved = true
				p.MovePiece(m.From, m.To)
				p.SetPiece(rook, NewSquare(m.To.File-d, m.To.Rank))
				p.EnPassant = NoSquare
				return NoPiece
			}
		}
		return NoPiece
	}

	if taken := p.MovePiece(m.From, m.To); !taken.IsNone() {
		captured = taken
	}

	// A pawn advancing two or more squares exposes the square one step
	// behind its furthest advance.
	p.EnPassant = NoSquare
	if piece.Type == Pawn && m.From.File == m.To.File && abs(m.To.Rank-m.From.Rank) >= 2 {
		p.EnPassant = NewSquare(m.To.File, m.To.Rank-pawnDir(piece.Color))
	}

	return captured
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
