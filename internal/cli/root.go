package cli

import (
	"time"

	"github.com/alexanderramin/visotime/internal/app"
	"github.com/alexanderramin/visotime/internal/domain"
	"github.com/alexanderramin/visotime/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands
// and the TUI.
type App struct {
	Entries service.EntryService

	// Optional use-case overrides. When nil, Entries serves them.
	ListEntries   app.ListEntriesUseCase
	CreateEntry   app.CreateEntryUseCase
	DeleteEntry   app.DeleteEntryUseCase
	ImportEntries app.ImportEntriesUseCase

	Catalog       *domain.Catalog
	MaxDailyHours float64

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. The bare
	// "visotime" command launches the TUI only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "visotime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "visotime",
		Short:         "Log hours against projects and review them by day",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return RunTUI(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newEntryCmd(app),
		newProjectsCmd(app),
	)

	return root
}
