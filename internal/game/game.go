// Package game implements the chess-variant rule engine: legality
// filtering, move execution, promotion handling and terminal detection on
// top of the board package.
package game

import (
	"fmt"

	"github.com/knightsfork/varchess/internal/board"
)

// PendingPromotion is the transient state between a pawn reaching its last
// rank and the caller supplying a promotion choice. While pending, no
// further moves are accepted.
type PendingPromotion struct {
	From     board.Square
	To       board.Square
	Color    board.Color
	Captured board.Piece

	notation string
}

// MoveResult is the record returned by each mutating call. Callers pattern
// match on it instead of relying on hidden event fan-out.
type MoveResult struct {
	Notation         string
	Capture          bool
	Check            bool
	PromotionPending bool
	Outcome          Outcome
	SideToMove       board.Color
}

// Game owns a single live position and applies the rules of the variant to
// it. It is not safe for concurrent use; one controller owns it at a time.
type Game struct {
	pos     *board.Position
	outcome Outcome
	pending *PendingPromotion
	history []string

	// Optional observers, fired on state transitions.
	OnTurnChanged       func(board.Color)
	OnCheck             func(board.Color)
	OnMovePlayed        func(string)
	OnPromotionRequired func(board.Square, board.Color)
	OnGameOver          func(Outcome)
}

// New creates a game with a fresh starting position.
func New(size int, mode board.SetupMode) (*Game, error) {
	pos, err := board.NewPosition(size, mode)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos}, nil
}

// Reset discards the current game and reinitializes for the given setup.
func (g *Game) Reset(size int, mode board.SetupMode) error {
	pos, err := board.NewPosition(size, mode)
	if err != nil {
		return err
	}
	g.pos = pos
	g.outcome = Playing
	g.pending = nil
	g.history = nil
	return nil
}

// Position returns the live position. Callers must not mutate it outside
// the rule engine's move-execution path.
func (g *Game) Position() *board.Position {
	return g.pos
}

// Outcome returns the current game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// SideToMove returns the color whose turn it is.
func (g *Game) SideToMove() board.Color {
	return g.pos.SideToMove
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck(g.pos.SideToMove)
}

// PromotionPending returns true while a promotion choice is awaited.
func (g *Game) PromotionPending() bool {
	return g.pending != nil
}

// History returns the notation of every completed move.
func (g *Game) History() []string {
	return g.history
}

// LegalMoves returns the legal moves for the piece on sq, provided it
// belongs to the side to move and no promotion is pending.
func (g *Game) LegalMoves(sq board.Square) []board.Move {
	if g.pending != nil {
		return nil
	}
	piece := g.pos.PieceAt(sq)
	if piece.IsNone() || piece.Color != g.pos.SideToMove {
		return nil
	}
	return g.pos.LegalMoves(sq)
}

// TryMakeMove attempts the move from→to. It fails, leaving the state
// unchanged, when the destination is not in the legal set or a promotion
// is pending. A pawn reaching its last rank suspends turn advancement and
// reports a pending promotion.
func (g *Game) TryMakeMove(from, to board.Square) (MoveResult, bool) {
	if g.pending != nil {
		return MoveResult{}, false
	}

	var move board.Move
	found := false
	for _, m := range g.LegalMoves(from) {
		if m.To == to {
			move = m
			found = true
			break
		}
	}
	if !found {
		return MoveResult{}, false
	}

	piece := g.pos.PieceAt(from)
	capture := move.IsCapture(g.pos)
	notation := board.Notation(g.pos, move, capture)

	captured := g.pos.Apply(move)

	if piece.Type == board.Pawn && to.RelativeRank(piece.Color, g.pos.Size) == g.pos.Size-1 {
		g.pending = &PendingPromotion{
			From:     from,
			To:       to,
			Color:    piece.Color,
			Captured: captured,
			notation: notation,
		}
		if g.OnPromotionRequired != nil {
			g.OnPromotionRequired(to, piece.Color)
		}
		return MoveResult{
			Capture:          capture,
			PromotionPending: true,
			Outcome:          g.outcome,
			SideToMove:       g.pos.SideToMove,
		}, true
	}

	return g.finishMove(notation, capture, piece.Type == board.Pawn), true
}

// CompletePromotion replaces the pending pawn with the chosen piece kind,
// defaulting to Queen on unrecognized input, then finalizes the move.
func (g *Game) CompletePromotion(kind board.PieceType) (MoveResult, bool) {
	if g.pending == nil {
		return MoveResult{}, false
	}

	switch kind {
	case board.Queen, board.Rook, board.Bishop, board.Knight:
	default:
		kind = board.Queen
	}

	pending := g.pending
	g.pending = nil

	g.pos.SetPiece(board.Piece{Type: kind, Color: pending.Color, Moved: true}, pending.To)

	notation := pending.notation + board.PromotionSuffix(kind)
	capture := !pending.Captured.IsNone()
	return g.finishMove(notation, capture, true), true
}

// finishMove runs the shared tail of every completed move: clocks, side
// switch, terminal evaluation, history and observer notification.
func (g *Game) finishMove(notation string, capture, pawnMove bool) MoveResult {
	mover := g.pos.SideToMove

	if capture || pawnMove {
		g.pos.HalfMoveClock = 0
	} else {
		g.pos.HalfMoveClock++
	}
	if mover == board.Black {
		g.pos.FullMoveNumber++
	}
	g.pos.SideToMove = mover.Other()

	opponent := g.pos.SideToMove
	check := g.pos.InCheck(opponent)
	hasMoves := g.pos.HasLegalMoves(opponent)

	switch {
	case check && !hasMoves:
		notation += "#"
		if mover == board.White {
			g.outcome = WhiteWins
		} else {
			g.outcome = BlackWins
		}
	case check:
		notation += "+"
		if g.OnCheck != nil {
			g.OnCheck(opponent)
		}
	case !hasMoves:
		g.outcome = Stalemate
	case g.pos.HalfMoveClock >= board.HalfMoveLimit:
		g.outcome = DrawByClock
	}

	g.history = append(g.history, notation)
	if g.OnMovePlayed != nil {
		g.OnMovePlayed(notation)
	}
	if g.outcome.IsTerminal() {
		if g.OnGameOver != nil {
			g.OnGameOver(g.outcome)
		}
	} else if g.OnTurnChanged != nil {
		g.OnTurnChanged(opponent)
	}

	return MoveResult{
		Notation:   notation,
		Capture:    capture,
		Check:      check,
		Outcome:    g.outcome,
		SideToMove: g.pos.SideToMove,
	}
}

// ImportFEN replaces the live position with one decoded from an extended
// FEN string. Import is atomic: the position is validated fully before the
// live state is touched, so a malformed string leaves the game intact.
func (g *Game) ImportFEN(fen string) error {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if err := pos.Validate(); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	g.pos = pos
	g.outcome = Playing
	g.pending = nil
	g.history = nil
	return nil
}

// ExportFEN returns the extended FEN string for the live position.
func (g *Game) ExportFEN() string {
	return g.pos.ToFEN()
}

// LoadTranscript replaces the live position with one rehydrated from a
// peer's board transcript, as used by the custom setup path. Like FEN
// import, it is atomic and a validation point for the one-king invariant.
func (g *Game) LoadTranscript(s string, size int) error {
	pos, err := board.ParseTranscript(s, size)
	if err != nil {
		return err
	}
	if err := pos.Validate(); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	g.pos = pos
	g.outcome = Playing
	g.pending = nil
	g.history = nil
	return nil
}

// Transcript returns the lossless transcript of the live position.
func (g *Game) Transcript() string {
	return g.pos.EncodeTranscript()
}
