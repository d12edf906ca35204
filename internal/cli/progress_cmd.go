package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/snacks/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show your level and recent activity in each category",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.GetStatus(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(report))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 5, "Number of recent days to summarize")

	return cmd
}
