package board

import "testing"

func TestEmptySizeLimits(t *testing.T) {
	for _, size := range []int{MinBoardSize, 8, MaxBoardSize} {
		if _, err := Empty(size); err != nil {
			t.Errorf("Empty(%d): %v", size, err)
		}
	}
	for _, size := range []int{0, 2, 100, -1} {
		if _, err := Empty(size); err == nil {
			t.Errorf("Empty(%d) succeeded, want error", size)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	cp := pos.Copy()

	cp.RemovePiece(Square{4, 1})
	cp.SideToMove = Black

	if pos.IsEmpty(Square{4, 1}) {
		t.Error("removing from the copy emptied the original")
	}
	if pos.SideToMove != White {
		t.Error("mutating the copy changed the original's side to move")
	}
}

func TestKingSquare(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	if got := pos.KingSquare(White); got != (Square{4, 0}) {
		t.Errorf("white king at %s, want e1", got)
	}
	if got := pos.KingSquare(Black); got != (Square{4, 7}) {
		t.Errorf("black king at %s, want e8", got)
	}

	empty, _ := Empty(8)
	if got := empty.KingSquare(White); got != NoSquare {
		t.Errorf("empty board king at %s, want none", got)
	}
}

func TestValidateKings(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	if err := pos.Validate(); err != nil {
		t.Errorf("start position invalid: %v", err)
	}

	pos.RemovePiece(Square{4, 7})
	if err := pos.Validate(); err == nil {
		t.Error("missing black king passed validation")
	}

	pos.SetPiece(NewPiece(King, Black), Square{4, 7})
	pos.SetPiece(NewPiece(King, Black), Square{0, 3})
	if err := pos.Validate(); err == nil {
		t.Error("two black kings passed validation")
	}
}

func TestMaterial(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	if got := pos.Material(); got != 0 {
		t.Errorf("start material = %d, want 0", got)
	}

	pos.RemovePiece(Square{3, 7}) // black queen
	if got := pos.Material(); got != 900 {
		t.Errorf("material after removing black queen = %d, want 900", got)
	}
}

func TestMovePieceSetsMoved(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	from, to := Square{4, 1}, Square{4, 3}

	if pos.PieceAt(from).Moved {
		t.Fatal("fresh pawn already flagged as moved")
	}
	pos.MovePiece(from, to)
	if !pos.PieceAt(to).Moved {
		t.Error("pawn not flagged as moved after MovePiece")
	}
	if !pos.IsEmpty(from) {
		t.Error("origin square not vacated")
	}
}

func TestVacatedCellEqualsFreshCell(t *testing.T) {
	// There is a single representation of emptiness. A square a piece has
	// left must compare equal to one that was never occupied.
	pos := mustParseFEN(t, StartFEN)
	pos.RemovePiece(Square{4, 1})

	fresh, _ := Empty(8)
	if got, want := pos.PieceAt(Square{4, 1}), fresh.PieceAt(Square{4, 4}); got != want {
		t.Errorf("vacated cell %#v differs from fresh cell %#v", got, want)
	}
	if got := pos.PieceAt(Square{4, 1}); got != NoPiece {
		t.Errorf("vacated cell %#v, want NoPiece", got)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	off := Square{8, 8}

	if got := pos.PieceAt(off); got != NoPiece {
		t.Errorf("PieceAt off board = %v, want NoPiece", got)
	}
	pos.SetPiece(NewPiece(Queen, White), off) // must not panic
	if got := pos.RemovePiece(off); got != NoPiece {
		t.Errorf("RemovePiece off board = %v, want NoPiece", got)
	}
}
