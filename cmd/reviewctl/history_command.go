package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List this session's past reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.sessionID()
			if err != nil {
				return err
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}

			records, err := client.HistoryBySession(cmd.Context(), session, limit)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No reviews recorded for this session")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				source := "model"
				if record.FromCache {
					source = "cache"
				}
				rows = append(rows, []string{
					record.ID,
					displayLanguage(record.Language),
					fmt.Sprintf("%d", record.Result.OverallScore),
					source,
					record.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Language", "Score", "Source", "When"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of records to list")
	return cmd
}
