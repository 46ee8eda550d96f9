package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulso-tools/pulso/internal/calendar"
	"github.com/pulso-tools/pulso/internal/overview"
	"github.com/pulso-tools/pulso/internal/report"
)

func (a *App) showCmd() *cobra.Command {
	var verbose bool
	var noColor bool
	var withAI bool
	var model string

	cmd := &cobra.Command{
		Use:   "show <date|week>",
		Short: "Print a daily or weekly report",
		Long: `Print the report for a YYYY-MM-DD date or a YYYY-Www ISO week.

With --ai, a missing overview paragraph is generated from the report's
items using the configured model.

Example:
  pulso show 2025-07-14
  pulso show 2025-W29 --ai`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			r, err := a.loadByIdentifier(args[0])
			if err != nil {
				return err
			}

			if withAI && r.Overview == "" {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				if model == "" {
					model = a.config.AI.Model
				}
				if err := a.generateOverview(ctx, r, model); err != nil {
					fmt.Printf("  %s\n", formatWarn("overview generation failed: "+err.Error()))
				}
			}

			printReport(r, verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show item summaries and links")
	cmd.Flags().BoolVar(&withAI, "ai", false, "Generate a missing overview with the configured model")
	cmd.Flags().StringVar(&model, "model", "", "Model to use for --ai (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// loadByIdentifier resolves an argument to a weekly or daily report. Week
// identifiers match YYYY-Www; everything else must parse as a date.
func (a *App) loadByIdentifier(arg string) (*report.Report, error) {
	if calendar.IsWeekString(arg) {
		return a.loader.LoadWeekly(arg)
	}
	if _, err := time.ParseInLocation(calendar.DateLayout, arg, time.Local); err != nil {
		return nil, fmt.Errorf("%q is neither a YYYY-MM-DD date nor a YYYY-Www week", arg)
	}
	return a.loader.LoadDaily(arg)
}

// generateOverview fills r.Overview in place from the report's items.
func (a *App) generateOverview(ctx context.Context, r *report.Report, model string) error {
	client, err := overview.NewOpenAIClient(a.config.AI.APIKey, model, a.config.AI.BaseURL)
	if err != nil {
		return err
	}

	text, err := overview.NewGenerator(client).Generate(ctx, r)
	if err != nil {
		return err
	}
	r.Overview = text
	return nil
}
