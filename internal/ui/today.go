package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulso-tools/pulso/internal/calendar"
	"github.com/pulso-tools/pulso/internal/report"
)

func (a *App) todayCmd() *cobra.Command {
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's report",
		Long: `Print the daily report for the current date, falling back to the
current ISO week's report when no daily one exists.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			now := time.Now()
			r, err := a.loader.LoadDaily(calendar.FormatDate(now))
			if errors.Is(err, report.ErrNotFound) {
				week := calendar.FormatWeek(calendar.ISOYearOf(now), calendar.ISOWeekOf(now))
				r, err = a.loader.LoadWeekly(week)
				if errors.Is(err, report.ErrNotFound) {
					fmt.Println("No report for today or this week yet.")
					return nil
				}
			}
			if err != nil {
				return fmt.Errorf("loading report: %w", err)
			}

			printReport(r, verbose)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show item summaries and links")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
