package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulso-tools/pulso/internal/config"
	"github.com/pulso-tools/pulso/internal/report"
	"github.com/pulso-tools/pulso/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   report.Repository
	loader *report.Loader
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository, report
// loader, and config.
func NewApp(repo report.Repository, loader *report.Loader, cfg *config.Config) *App {
	a := &App{repo: repo, loader: loader, config: cfg}

	a.root = &cobra.Command{
		Use:   "pulso",
		Short: "A calendar navigator for community activity reports",
		Long: `Pulso browses daily and weekly community activity reports from
the terminal.

Running it with no arguments opens the interactive calendar: days and
ISO weeks with a report are highlighted, and opening one shows its
overview and items in a preview pane.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.loader, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.syncCmd())
	a.root.AddCommand(a.weeksCmd())
	a.root.AddCommand(a.todayCmd())
	a.root.AddCommand(a.showCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pulso %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
