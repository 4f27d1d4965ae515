package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "lentoflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lentoflow",
		Short: "Local-first habit tracker and daily recommender",
		Long: `Local-first habit tracker and daily recommender.

Quick usage: lentoflow today shows what to do now; lentoflow serve runs the HTTP API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newServeCmd(app),
		newTodayCmd(app),
		newTasksCmd(app),
	)

	return root
}
