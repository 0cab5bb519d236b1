package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/knightsfork/varchess/internal/board"
	"github.com/knightsfork/varchess/internal/engine"
)

// Perft builds the move-generation node counting command.
func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count legal move tree nodes, for move generator debugging",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, _ := cmd.Flags().GetInt("depth")
			fen, _ := cmd.Flags().GetString("fen")
			size, _ := cmd.Flags().GetInt("size")
			setupName, _ := cmd.Flags().GetString("setup")

			var pos *board.Position
			var err error
			if fen != "" {
				pos, err = board.ParseFEN(fen)
			} else {
				var mode board.SetupMode
				mode, err = board.ParseSetupMode(setupName)
				if err == nil {
					pos, err = board.NewPosition(size, mode)
				}
			}
			if err != nil {
				return err
			}

			for d := 1; d <= depth; d++ {
				start := time.Now()
				nodes := engine.Perft(pos, d)
				elapsed := time.Since(start)
				fmt.Printf("perft(%d) = %d  (%s)\n", d, nodes, elapsed.Round(time.Millisecond))
			}
			return nil
		},
	}

	cmd.Flags().Int("depth", 4, "maximum perft depth")
	cmd.Flags().String("fen", "", "position string to start from")
	cmd.Flags().Int("size", 8, "board size when no position is given")
	cmd.Flags().String("setup", "classic", "starting setup when no position is given")

	return cmd
}
