package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
)

func newFieldsCmd(app *App) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List configurable fields and their allowed values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfiguration(app.Workbench.Snapshot().Config))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFieldCatalog())
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "show the default value of every field instead")
	return cmd
}
