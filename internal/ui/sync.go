package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Import the report index into local storage",
		Long: `Read index.json from the report directory and store it locally.

The calendar highlights availability from this stored index, so run
sync after the report pipeline publishes new files.

Example:
  pulso sync`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			idx, err := a.loader.LoadIndex()
			if err != nil {
				return fmt.Errorf("reading report index: %w", err)
			}
			if err := a.repo.SaveIndex(ctx, idx); err != nil {
				return fmt.Errorf("storing index: %w", err)
			}

			fmt.Printf("Synced %d daily and %d weekly reports\n", len(idx.Dates), len(idx.Weeks))
			if idx.GeneratedAt != "" {
				fmt.Printf("Index generated at %s\n", formatMuted(idx.GeneratedAt))
			}
			return nil
		},
	}
}
