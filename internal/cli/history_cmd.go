package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
	"github.com/alexanderramin/raiden/internal/domain"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse recently generated prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(app.Workbench.History(), app.now()))
			return nil
		},
	}
	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryClearCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List history entries, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(app.Workbench.History(), app.now()))
			return nil
		},
	}
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the configuration captured by a history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, item := range app.Workbench.History() {
				if item.ID == args[0] {
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoryItem(item, app.now()))
					return nil
				}
			}
			return &domain.NotFoundError{Entity: "history item", ID: args[0]}
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := len(app.Workbench.History())
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "History is already empty.")
				return nil
			}
			ok, err := confirm(app, fmt.Sprintf("Clear %d history entries?", n), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Workbench.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries.\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
