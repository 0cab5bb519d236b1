package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knightsfork/varchess/internal/storage"
)

// StatsCmd builds the play-statistics command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show play statistics",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.Store) error {
				stats, err := store.LoadStats()
				if err != nil {
					return err
				}
				fmt.Printf("games played: %d\n", stats.GamesPlayed)
				fmt.Printf("wins:         %d (%.1f%%)\n", stats.Wins, stats.WinRate())
				fmt.Printf("losses:       %d\n", stats.Losses)
				fmt.Printf("draws:        %d\n", stats.Draws)
				fmt.Printf("streak:       %d (best %d)\n", stats.CurrentStreak, stats.LongestStreak)
				for diff, wins := range stats.WinsByDiff {
					fmt.Printf("  wins on %s: %d\n", diff, wins)
				}
				return nil
			})
		},
	}
}
