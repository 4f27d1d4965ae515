package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/lentoflow/internal/cli/formatter"
	"github.com/alexanderramin/lentoflow/internal/tui"
)

func newTodayCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's recommended and other tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Today.GetTodayView(context.Background(), app.UserID, app.now())
			if err != nil {
				return err
			}

			interactive := !plain && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
			if interactive {
				return tui.RunDashboard(view)
			}
			fmt.Print(formatter.FormatToday(view))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Force plain-text output even on a terminal")
	return cmd
}
