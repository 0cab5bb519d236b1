package game

import (
	"strings"
	"testing"

	"github.com/knightsfork/varchess/internal/board"
)

func newGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := New(8, board.SetupCustom)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ImportFEN(fen); err != nil {
		t.Fatalf("ImportFEN(%q): %v", fen, err)
	}
	return g
}

func play(t *testing.T, g *Game, moves ...string) MoveResult {
	t.Helper()
	var last MoveResult
	for _, mv := range moves {
		from, to, err := board.ParseMove(mv)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", mv, err)
		}
		result, ok := g.TryMakeMove(from, to)
		if !ok {
			t.Fatalf("move %s rejected\n%s", mv, g.Position())
		}
		last = result
	}
	return last
}

func TestFoolsMate(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}

	var over Outcome
	g.OnGameOver = func(o Outcome) { over = o }

	result := play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	if result.Outcome != BlackWins {
		t.Errorf("outcome = %s, want black wins", result.Outcome)
	}
	if result.Notation != "Qh4#" {
		t.Errorf("notation = %q, want Qh4#", result.Notation)
	}
	if over != BlackWins {
		t.Errorf("game over observer got %s, want black wins", over)
	}
	if got := g.History(); len(got) != 4 || got[3] != "Qh4#" {
		t.Errorf("history = %v", got)
	}
}

func TestCheckAnnotation(t *testing.T) {
	g := newGame(t, "8:4k3/8/8/8/8/8/8/R3K3 w")

	var checked board.Color = board.NoColor
	g.OnCheck = func(c board.Color) { checked = c }

	result := play(t, g, "a1a8")
	if !result.Check {
		t.Error("rook to the back rank did not report check")
	}
	if result.Notation != "Ra8+" {
		t.Errorf("notation = %q, want Ra8+", result.Notation)
	}
	if checked != board.Black {
		t.Errorf("check observer got %s, want Black", checked)
	}
	if result.Outcome != Playing {
		t.Errorf("outcome = %s, want playing", result.Outcome)
	}
}

func TestStalemate(t *testing.T) {
	// Queen to f7 leaves the cornered king unchecked with no moves.
	g := newGame(t, "8:7k/8/6K1/8/8/8/5Q2/8 w")

	result := play(t, g, "f2f7")
	if result.Outcome != Stalemate {
		t.Errorf("outcome = %s, want stalemate", result.Outcome)
	}
	if result.Check {
		t.Error("stalemate reported as check")
	}
}

func TestIllegalMoveLeavesStateIntact(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	before := g.ExportFEN()

	cases := [][2]string{
		{"e2", "e5"}, // pawn three forward
		{"e7", "e5"}, // not your turn
		{"b1", "d2"}, // knight onto own pawn
		{"e3", "e4"}, // empty origin
	}
	for _, c := range cases {
		from, _ := board.ParseSquare(c[0])
		to, _ := board.ParseSquare(c[1])
		if _, ok := g.TryMakeMove(from, to); ok {
			t.Errorf("move %s%s accepted, want rejection", c[0], c[1])
		}
	}

	if after := g.ExportFEN(); after != before {
		t.Errorf("state changed by rejected moves:\n before %s\n after  %s", before, after)
	}
	if g.SideToMove() != board.White {
		t.Errorf("side to move changed to %s", g.SideToMove())
	}
}

func TestPromotionFlow(t *testing.T) {
	g := newGame(t, "8:4k3/6P1/8/8/8/8/8/4K3 w")

	turnChanges := 0
	g.OnTurnChanged = func(board.Color) { turnChanges++ }
	promoted := board.NoSquare
	g.OnPromotionRequired = func(sq board.Square, _ board.Color) { promoted = sq }

	from, to := board.Square{File: 6, Rank: 6}, board.Square{File: 6, Rank: 7}
	result, ok := g.TryMakeMove(from, to)
	if !ok {
		t.Fatal("promotion push rejected")
	}
	if !result.PromotionPending || !g.PromotionPending() {
		t.Fatal("promotion not pending after reaching the far rank")
	}
	if result.SideToMove != board.White {
		t.Error("turn advanced before the promotion choice")
	}
	if turnChanges != 0 {
		t.Error("turn observer fired before the promotion choice")
	}
	if promoted != to {
		t.Errorf("promotion observer got %s, want %s", promoted, to)
	}

	// Further moves wait for the choice.
	if _, ok := g.TryMakeMove(board.Square{File: 4, Rank: 0}, board.Square{File: 4, Rank: 1}); ok {
		t.Error("move accepted while promotion pending")
	}
	if g.LegalMoves(board.Square{File: 4, Rank: 0}) != nil {
		t.Error("legal moves offered while promotion pending")
	}

	result, ok = g.CompletePromotion(board.Knight)
	if !ok {
		t.Fatal("CompletePromotion rejected")
	}
	if result.Notation != "g8=N" {
		t.Errorf("notation = %q, want g8=N", result.Notation)
	}
	if got := g.Position().PieceAt(to); got.Type != board.Knight || got.Color != board.White {
		t.Errorf("promoted piece = %v, want white knight", got)
	}
	if g.SideToMove() != board.Black {
		t.Error("turn did not advance after the promotion completed")
	}
	if turnChanges != 1 {
		t.Errorf("turn observer fired %d times, want 1", turnChanges)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	g := newGame(t, "8:4k3/6P1/8/8/8/8/8/4K3 w")
	play(t, g, "g7g8")

	result, ok := g.CompletePromotion(board.King)
	if !ok {
		t.Fatal("CompletePromotion rejected")
	}
	if got := g.Position().PieceAt(board.Square{File: 6, Rank: 7}); got.Type != board.Queen {
		t.Errorf("promoted piece = %s, want queen", got.Type)
	}
	// The fresh queen checks the king along the rank.
	if result.Notation != "g8=Q+" {
		t.Errorf("notation = %q, want g8=Q+", result.Notation)
	}
	if !result.Check {
		t.Error("promotion check not reported")
	}
}

func TestCompletePromotionWithoutPending(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.CompletePromotion(board.Queen); ok {
		t.Error("CompletePromotion accepted with nothing pending")
	}
}

func TestHalfMoveClockDraw(t *testing.T) {
	g := newGame(t, "8:4k3/8/8/8/8/8/4P3/4K2R w")
	g.Position().HalfMoveClock = board.HalfMoveLimit - 1

	result := play(t, g, "h1h2")
	if result.Outcome != DrawByClock {
		t.Errorf("outcome = %s, want draw by clock", result.Outcome)
	}
	if g.Position().HalfMoveClock != board.HalfMoveLimit {
		t.Errorf("clock = %d, want %d", g.Position().HalfMoveClock, board.HalfMoveLimit)
	}
}

func TestHalfMoveClockResets(t *testing.T) {
	// A pawn move on the brink of the draw resets the count.
	g := newGame(t, "8:4k3/8/8/8/8/8/4P3/4K2R w")
	g.Position().HalfMoveClock = board.HalfMoveLimit - 1

	result := play(t, g, "e2e3")
	if result.Outcome != Playing {
		t.Errorf("outcome = %s, want playing", result.Outcome)
	}
	if g.Position().HalfMoveClock != 0 {
		t.Errorf("clock = %d, want 0", g.Position().HalfMoveClock)
	}
}

func TestFullMoveNumber(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	if g.Position().FullMoveNumber != 1 {
		t.Fatalf("fresh game full move = %d, want 1", g.Position().FullMoveNumber)
	}
	play(t, g, "e2e4")
	if g.Position().FullMoveNumber != 1 {
		t.Errorf("after white's move full move = %d, want 1", g.Position().FullMoveNumber)
	}
	play(t, g, "e7e5")
	if g.Position().FullMoveNumber != 2 {
		t.Errorf("after black's reply full move = %d, want 2", g.Position().FullMoveNumber)
	}
}

func TestImportFENAtomic(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	play(t, g, "e2e4")
	before := g.ExportFEN()

	// Parses fine but fails validation: no kings.
	if err := g.ImportFEN("8:8/8/8/8/8/8/8/8 w"); err == nil {
		t.Fatal("kingless import accepted")
	}
	if err := g.ImportFEN("not a position"); err == nil {
		t.Fatal("garbage import accepted")
	}

	if after := g.ExportFEN(); after != before {
		t.Errorf("failed import changed the live position:\n before %s\n after  %s", before, after)
	}
	if len(g.History()) != 1 {
		t.Errorf("failed import touched history: %v", g.History())
	}
}

func TestImportFENResets(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	play(t, g, "e2e4", "e7e5")

	if err := g.ImportFEN("8:4k3/8/8/8/8/8/8/4K3 b"); err != nil {
		t.Fatal(err)
	}
	if g.SideToMove() != board.Black {
		t.Errorf("side to move = %s, want Black", g.SideToMove())
	}
	if len(g.History()) != 0 {
		t.Errorf("history survived import: %v", g.History())
	}
	if g.Outcome() != Playing {
		t.Errorf("outcome = %s, want playing", g.Outcome())
	}
}

func TestTranscriptRoundTripThroughGame(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	play(t, g, "e2e4")
	transcript := g.Transcript()

	other, err := New(8, board.SetupCustom)
	if err != nil {
		t.Fatal(err)
	}
	if err := other.LoadTranscript(transcript, 8); err != nil {
		t.Fatal(err)
	}
	// The transcript carries placement and Moved flags, not the turn.
	got := strings.Fields(other.ExportFEN())[0]
	want := strings.Fields(g.ExportFEN())[0]
	if got != want {
		t.Errorf("transcript round trip:\n got %s\nwant %s", got, want)
	}
}

func TestLoadTranscriptValidates(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	before := g.ExportFEN()

	// A lone pawn, no kings.
	if err := g.LoadTranscript("0,1,0,0", 8); err == nil {
		t.Fatal("kingless transcript accepted")
	}
	if after := g.ExportFEN(); after != before {
		t.Error("failed transcript load changed the live position")
	}
}

func TestReset(t *testing.T) {
	g, err := New(8, board.SetupClassic)
	if err != nil {
		t.Fatal(err)
	}
	play(t, g, "e2e4", "e7e5")

	if err := g.Reset(10, board.SetupClassic); err != nil {
		t.Fatal(err)
	}
	if g.Position().Size != 10 {
		t.Errorf("size after reset = %d, want 10", g.Position().Size)
	}
	if len(g.History()) != 0 {
		t.Errorf("history survived reset: %v", g.History())
	}
	if g.SideToMove() != board.White {
		t.Errorf("side to move after reset = %s, want White", g.SideToMove())
	}
}
