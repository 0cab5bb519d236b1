package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knightsfork/varchess/internal/board"
	"github.com/knightsfork/varchess/internal/storage"
)

// Games builds the saved-game management command.
func Games() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Manage saved games",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.Store) error {
				names, err := store.ListGames()
				if err != nil {
					return err
				}
				if len(names) == 0 {
					fmt.Println("no saved games")
					return nil
				}
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.Store) error {
				saved, err := store.LoadGame(args[0])
				if err != nil {
					return err
				}
				pos, err := board.ParseFEN(saved.FEN)
				if err != nil {
					return fmt.Errorf("stored position is corrupt: %w", err)
				}
				fmt.Println(renderBoard(pos))
				fmt.Printf("setup: %s   outcome: %s   saved: %s\n",
					saved.Setup, saved.Outcome, saved.SavedAt.Format("2006-01-02 15:04"))
				if len(saved.Moves) > 0 {
					fmt.Println("moves:", strings.Join(saved.Moves, " "))
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.Store) error {
				return store.DeleteGame(args[0])
			})
		},
	})

	return cmd
}

func withStore(fn func(*storage.Store) error) error {
	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
