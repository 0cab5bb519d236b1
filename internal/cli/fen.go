package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/knightsfork/varchess/internal/board"
)

// Fen builds the position-string validation command.
func Fen() *cobra.Command {
	return &cobra.Command{
		Use:   "fen <position>",
		Short: "Validate and normalize a position string",
		Args:  cobra.ExactArgs(1),

		Long: heredoc.Doc(`fen parses an extended FEN position string, validates it, and
			prints the normalized form along with the board.

			The format is standard FEN prefixed with "size:", for example
			"12:..."; a missing prefix defaults to a board size of 8.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := board.ParseFEN(args[0])
			if err != nil {
				return err
			}
			if err := pos.Validate(); err != nil {
				return fmt.Errorf("invalid position: %w", err)
			}
			fmt.Println(renderBoard(pos))
			fmt.Println(pos.ToFEN())
			return nil
		},
	}
}
