package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lentoflow/internal/cli/formatter"
	"github.com/alexanderramin/lentoflow/internal/contract"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tracked habits",
	}
	cmd.AddCommand(newTasksListCmd(app), newTasksAddCmd(app), newTasksDeactivateCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var includeInactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), app.UserID, includeInactive)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("no tasks yet"))
				return nil
			}
			for _, t := range tasks {
				status := "active"
				if !t.IsActive {
					status = formatter.Dim("inactive")
				}
				fmt.Printf("%s  %-24s energy=%d interval=%dd importance=%d  %s\n",
					t.Icon, t.Name, t.EnergyCost, t.ExpectedInterval, t.Importance, status)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeInactive, "all", false, "Include inactive tasks")
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var energyCost, interval, importance int
	var description, category, color, icon string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Track a new habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.Create(context.Background(), app.UserID, contract.TaskCreate{
				Name: args[0], Description: description, EnergyCost: energyCost,
				ExpectedInterval: interval, Importance: importance, Category: category,
				Color: color, Icon: icon,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", t.Name, t.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&energyCost, "energy", 2, "Energy cost in [1,5]")
	cmd.Flags().IntVar(&interval, "interval", 1, "Expected interval in days [1,30]")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance in [1,5]")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&category, "category", "", "Optional category label")
	cmd.Flags().StringVar(&color, "color", "", "Hex color, e.g. #8ec07c")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon/emoji")
	return cmd
}

func newTasksDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate [id]",
		Short: "Stop tracking a habit without deleting its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Deactivate(context.Background(), app.UserID, args[0])
		},
	}
}
