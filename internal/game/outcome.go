package game

// Outcome is the result state of a game. It is terminal and absorbing once
// it leaves Playing.
type Outcome int

const (
	Playing Outcome = iota
	WhiteWins
	BlackWins
	Stalemate
	DrawByClock
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Stalemate:
		return "stalemate"
	case DrawByClock:
		return "draw by half-move clock"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the game has a final result.
func (o Outcome) IsTerminal() bool {
	return o != Playing
}
