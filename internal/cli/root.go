package cli

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/raiden/internal/intelligence"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/alexanderramin/raiden/internal/service"
)

// App holds the services and terminal capabilities CLI commands use.
type App struct {
	Workbench service.WorkbenchService
	Advisory  intelligence.AdvisoryService
	Log       *logger.Logger

	// IsInteractive reports whether prompts and TUIs may be shown.
	IsInteractive func() bool
	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(text string) error
	// Now defaults to time.Now; used for relative timestamps.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) advisory() intelligence.AdvisoryService {
	if a.Advisory == nil {
		return intelligence.NewAdvisoryService(nil)
	}
	return a.Advisory
}

// NewRootCmd creates the top-level "raiden" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.CopyToClipboard == nil {
		app.CopyToClipboard = clipboard.WriteAll
	}
	app.Log = logger.OrNop(app.Log)

	root := &cobra.Command{
		Use:   "raiden",
		Short: "Intelligence prompt workbench",
		Long: "Assemble structured intelligence prompts from templates and categorized fields,\n" +
			"keep a bounded history of what was generated, and save configurations as templates.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newTemplatesCmd(app),
		newTemplateCmd(app),
		newRenderCmd(app),
		newComposeCmd(app),
		newHistoryCmd(app),
		newFieldsCmd(app),
		newAskCmd(app),
	)

	return root
}
