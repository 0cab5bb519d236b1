package board

// IsSquareAttacked returns true if any piece of the given color attacks sq.
// Pawn diagonal threats are tested directly so that empty squares (castling
// path squares) are covered; every other piece attacks exactly the squares
// its pseudo-legal moves reach. Castling candidates are ignored: a castle
// can never land on an occupied square.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	dir := pawnDir(by)
	for _, df := range [2]int{-1, 1} {
		from := NewSquare(sq.File+df, sq.Rank-dir)
		if piece := p.PieceAt(from); piece.Type == Pawn && piece.Color == by {
			return true
		}
	}

	for rank := 0; rank < p.Size; rank++ {
		for file := 0; file < p.Size; file++ {
			from := NewSquare(file, rank)
			piece := p.PieceAt(from)
			if piece.IsNone() || piece.Color != by || piece.Type == Pawn {
				continue
			}
			for _, m := range p.pseudoMoves(from, false) {
				if m.To == sq {
					return true
				}
			}
		}
	}
	return false
}

// InCheck returns true if the given color's king is attacked. A position
// with no king degrades to "no check" rather than failing.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}

// MoveKeepsKingSafe simulates m on the live grid and reports whether the
// mover's own king is left out of check. The simulation temporarily
// relocates the piece and removes any en-passant-captured pawn, then is
// undone unconditionally.
func (p *Position) MoveKeepsKingSafe(m Move) bool {
	piece := p.PieceAt(m.From)
	if piece.IsNone() {
		return false
	}

	iFrom, iTo := p.index(m.From), p.index(m.To)
	savedFrom, savedTo := p.grid[iFrom], p.grid[iTo]

	victimIdx := -1
	var savedVictim Piece
	if m.Kind == MoveEnPassant {
		v := epVictimSquare(m.To, piece.Color)
		if p.InBounds(v) {
			victimIdx = p.index(v)
			savedVictim = p.grid[victimIdx]
			p.grid[victimIdx] = NoPiece
		}
	}

	p.grid[iTo] = savedFrom
	p.grid[iFrom] = NoPiece

	safe := !p.InCheck(piece.Color)

	p.grid[iFrom] = savedFrom
	p.grid[iTo] = savedTo
	if victimIdx >= 0 {
		p.grid[victimIdx] = savedVictim
	}
	return safe
}

// LegalMoves returns the fully legal moves for the piece on sq: pseudo-legal
// moves filtered for king safety, with castling additionally requiring the
// king's starting and crossed squares to be safe. The king may not castle
// out of, through, or into check.
func (p *Position) LegalMoves(sq Square) []Move {
	piece := p.PieceAt(sq)
	if piece.IsNone() {
		return nil
	}
	var legal []Move
	for _, m := range p.PseudoLegalMoves(sq) {
		if m.Kind == MoveCastle {
			if p.InCheck(piece.Color) {
				continue
			}
			mid := NewSquare((m.From.File+m.To.File)/2, m.From.Rank)
			if p.IsSquareAttacked(mid, piece.Color.Other()) {
				continue
			}
		}
		if p.MoveKeepsKingSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move for the given color.
func (p *Position) AllLegalMoves(c Color) []Move {
	var moves []Move
	for rank := 0; rank < p.Size; rank++ {
		for file := 0; file < p.Size; file++ {
			sq := NewSquare(file, rank)
			if piece := p.PieceAt(sq); !piece.IsNone() && piece.Color == c {
				moves = append(moves, p.LegalMoves(sq)...)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given color has at least one legal move.
func (p *Position) HasLegalMoves(c Color) bool {
	for rank := 0; rank < p.Size; rank++ {
		for file := 0; file < p.Size; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece.IsNone() || piece.Color != c {
				continue
			}
			if len(p.LegalMoves(sq)) > 0 {
				return true
			}
		}
	}
	return false
}
