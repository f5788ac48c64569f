package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var withCode bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display a single review in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			record, err := client.HistoryByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, record)
			}

			out := cmd.OutOrStdout()
			source := "model"
			if record.FromCache {
				source = "cache"
			}
			fmt.Fprintf(out, "Review %s\n", record.ID)
			fmt.Fprintf(out, "Session:  %s\n", record.SessionID)
			fmt.Fprintf(out, "Language: %s\n", displayLanguage(record.Language))
			fmt.Fprintf(out, "Source:   %s\n", source)
			fmt.Fprintf(out, "When:     %s\n", record.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Score:    %d/100\n", record.Result.OverallScore)
			if record.Result.Summary != "" {
				fmt.Fprintf(out, "Summary:  %s\n", record.Result.Summary)
			}
			renderResult(out, &record.Result)

			if withCode && record.Code != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Code")
				fmt.Fprintln(out, record.Code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCode, "code", false, "Print the submitted code as well")
	return cmd
}
