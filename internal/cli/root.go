// Package cli implements the varchess command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Root builds the root command with all subcommands registered.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "varchess",
		Short: "A chess-variant engine for boards from 3×3 to 99×99",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Play())
	root.AddCommand(Fen())
	root.AddCommand(Perft())
	root.AddCommand(Games())
	root.AddCommand(StatsCmd())

	return root
}
