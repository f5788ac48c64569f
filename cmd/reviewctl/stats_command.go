package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show review counts across all sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			stats, err := client.Stats(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total reviews: %d\n", stats.TotalReviews)
			if len(stats.Languages) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(stats.Languages))
			for _, entry := range stats.Languages {
				rows = append(rows, []string{
					displayLanguage(entry.Language),
					fmt.Sprintf("%d", entry.Count),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Language", "Reviews"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}
