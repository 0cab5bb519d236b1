package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/knightsfork/varchess/internal/board"
)

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold).SprintFunc()
	blackPiece = color.New(color.FgHiYellow).SprintFunc()
	frame      = color.New(color.FgHiBlack).SprintFunc()
)

// renderBoard returns a colored rank/file framed view of the position,
// topmost rank first.
func renderBoard(pos *board.Position) string {
	var sb strings.Builder
	for rank := pos.Size - 1; rank >= 0; rank-- {
		sb.WriteString(frame(fmt.Sprintf("%2d ", rank+1)))
		for file := 0; file < pos.Size; file++ {
			piece := pos.PieceAt(board.NewSquare(file, rank))
			switch {
			case piece.IsNone():
				sb.WriteString(frame(" ."))
			case piece.Color == board.White:
				sb.WriteString(" " + whitePiece(piece.String()))
			default:
				sb.WriteString(" " + blackPiece(piece.String()))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(frame("   "))
	for file := 0; file < pos.Size; file++ {
		if file < 26 {
			sb.WriteString(frame(fmt.Sprintf(" %c", 'a'+file)))
		} else {
			sb.WriteString(frame(" ?"))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
