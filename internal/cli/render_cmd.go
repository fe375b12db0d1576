package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
	"github.com/alexanderramin/raiden/internal/service"
)

type renderOptions struct {
	template     string
	fromHistory  string
	fromTemplate string
	saveAs       string
	out          string
	copy         bool
	plain        bool
}

func newRenderCmd(app *App) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a prompt from a template and field values",
		Long: "Select a template, adjust fields and generate the prompt. Every generated\n" +
			"prompt is added to the history.",
		Example: "  raiden render --template crisisResponse --set TARGET_SUBJECT=\"Port Z\"\n" +
			"  raiden render --from-history <id> --add DOMAIN_FOCUS=OSINT,SIGINT --copy\n" +
			"  raiden render --set CLASSIFICATION_LEVEL=secret --save-as \"Secret baseline\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := prepareSession(ctx, app.Workbench, opts); err != nil {
				return err
			}
			if err := applyFieldFlags(ctx, app.Workbench, cmd.Flags()); err != nil {
				return err
			}
			return generateAndEmit(ctx, cmd, app, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "template key or saved template id")
	f.StringVar(&opts.fromHistory, "from-history", "", "start from a history entry's configuration")
	f.StringVar(&opts.fromTemplate, "from-template", "", "start from a saved template's configuration")
	addFieldFlags(f)
	f.StringVar(&opts.saveAs, "save-as", "", "save the result as a template named NAME")
	f.StringVarP(&opts.out, "out", "o", "", "also write the prompt to FILE")
	f.BoolVar(&opts.copy, "copy", false, "copy the prompt to the clipboard")
	f.BoolVar(&opts.plain, "plain", false, "print the bare prompt without decoration")
	cmd.MarkFlagsMutuallyExclusive("from-history", "from-template")

	return cmd
}

// prepareSession restores a stored configuration, if asked, and then
// switches template. Switching after a restore merges the restored values.
func prepareSession(ctx context.Context, wb service.WorkbenchService, opts renderOptions) error {
	switch {
	case opts.fromHistory != "":
		if err := wb.LoadHistoryItem(ctx, opts.fromHistory); err != nil {
			return err
		}
	case opts.fromTemplate != "":
		if err := wb.LoadTemplate(ctx, opts.fromTemplate); err != nil {
			return err
		}
	}
	if opts.template != "" {
		return wb.SelectTemplate(ctx, opts.template)
	}
	return nil
}

func generateAndEmit(ctx context.Context, cmd *cobra.Command, app *App, opts renderOptions) error {
	res, err := app.Workbench.Generate(ctx)
	if err != nil {
		return err
	}
	snap := app.Workbench.Snapshot()
	w := cmd.OutOrStdout()

	if opts.plain {
		fmt.Fprintln(w, res.Prompt)
	} else {
		fmt.Fprint(w, formatter.FormatPrompt(snap.TemplateName, snap.Config.ClassificationLevel, res.Prompt))
	}

	status := cmd.ErrOrStderr()
	if res.History == nil {
		fmt.Fprintln(status, formatter.StyleYellow.Render("No template resolved; nothing recorded."))
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(res.Prompt), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.out, err)
		}
		fmt.Fprintf(status, "Wrote %s.\n", opts.out)
	}

	if opts.copy {
		if err := app.CopyToClipboard(res.Prompt); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(status, "Copied to clipboard.")
	}

	if opts.saveAs != "" {
		ut, err := app.Workbench.SaveAsTemplate(ctx, opts.saveAs)
		if err != nil {
			return err
		}
		fmt.Fprintf(status, "Saved template %s (%s).\n", formatter.Bold(ut.Name), ut.ID)
	}
	return nil
}
