package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulso-tools/pulso/internal/calendar"
)

func (a *App) weeksCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "weeks [year]",
		Short: "List the ISO weeks of a year",
		Long: `List every ISO week of the given year (default: current year)
with its Monday and whether a weekly report exists for it.

Example:
  pulso weeks
  pulso weeks 2024`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			year := time.Now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil || y < 1 {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = y
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			idx, err := a.repo.LoadIndex(ctx)
			if err != nil {
				return fmt.Errorf("loading index: %w", err)
			}
			avail := calendar.NewAvailability(idx.Dates, idx.Weeks)

			fmt.Printf("\n  %s\n", formatHeader(fmt.Sprintf("ISO WEEKS %d (%d weeks)", year, calendar.WeeksInYear(year))))
			for _, entry := range calendar.WeekList(year, avail) {
				monday := calendar.MondayOfISOWeek(year, entry.Number)
				line := fmt.Sprintf("  %s  %s", entry.Label, monday.Format("Mon Jan 02"))
				if entry.Available {
					fmt.Printf("%s  %s\n", formatAvailable(line), formatAvailable("●"))
				} else {
					fmt.Printf("%s\n", formatMuted(line))
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
