package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
	"github.com/alexanderramin/raiden/internal/intelligence"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [QUESTION...]",
		Short: "Ask the RAIDEN advisor about templates and the TSUKUYOMI framework",
		Long: "With a question, print a single answer. Without one, open an interactive\n" +
			"advisory session. The advisor needs the advisory model to be enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			question := strings.TrimSpace(strings.Join(args, " "))
			available := app.advisory().Available(ctx)
			if !available {
				app.Log.Debug("advisory model unavailable")
			}
			if question == "" {
				if available && app.interactive() {
					return runAdvisoryChat(ctx, app)
				}
				fmt.Fprintln(cmd.OutOrStdout(), intelligence.AwaitingQuery)
				return nil
			}

			if !available {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAdvisoryReply(intelligence.AwaitingQuery, 0))
				return nil
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), intelligence.StripPrefix(intelligence.ProcessingQuery))
			}
			reply, err := app.advisory().Query(ctx, question)
			stop()
			if err != nil {
				app.Log.Warn("advisory query failed", "error", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAdvisoryReply(reply, 0))
			return nil
		},
	}
}
