package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
	"github.com/alexanderramin/raiden/internal/domain"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List built-in and saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing := app.Workbench.Templates()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateListing(
				listing.Builtin, listing.User, app.Workbench.Snapshot().TemplateKey))
			return nil
		},
	}
}

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect, delete, export and import templates",
	}

	cmd.AddCommand(
		newTemplateShowCmd(app),
		newTemplateDeleteCmd(app),
		newTemplateExportCmd(app),
		newTemplateImportCmd(app),
	)

	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Show a template's defaults and body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, ok := app.Workbench.Resolve(args[0])
			if !ok {
				return &domain.NotFoundError{Entity: "template", ID: args[0]}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateDetail(res))
			return nil
		},
	}
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			res, ok := app.Workbench.Resolve(id)
			if !ok || res.User == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No saved template with id %s.\n", id)
				return nil
			}

			ok, err := confirm(app, fmt.Sprintf("Delete template %q?", res.Name), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			if _, err := app.Workbench.DeleteTemplate(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %s.\n", formatter.Bold(res.Name))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func newTemplateExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved templates as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" || out == "-" {
				return app.Workbench.ExportTemplates(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := app.Workbench.ExportTemplates(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d template(s) to %s.\n", len(app.Workbench.Templates().User), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to FILE instead of stdout")
	return cmd
}

func newTemplateImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import templates from a YAML export (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			imported, err := app.Workbench.ImportTemplates(cmd.Context(), r)
			if err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("nothing imported: %w", verr)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d template(s).\n", len(imported))
			for _, ut := range imported {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", formatter.Dim(ut.ID), ut.Name)
			}
			return nil
		},
	}
}
