package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reviewd/internal/dispatch"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "Submit a file for code review",
		Long:  "Submit a file for code review. Pass - to read code from stdin, in which case --language is required.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(code) == "" {
				return fmt.Errorf("%s is empty", args[0])
			}

			language := strings.TrimSpace(languageFlag)
			if language == "" {
				language = inferLanguage(args[0])
			}
			if language == "" {
				return fmt.Errorf("cannot infer language from %q; pass --language", args[0])
			}

			session, err := ctx.sessionID()
			if err != nil {
				return err
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}

			resp, err := client.Review(cmd.Context(), dispatch.Request{
				Code:      code,
				Language:  language,
				SessionID: session,
			})
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, resp)
			}
			renderReviewResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language of the submitted code (inferred from the file extension when omitted)")
	return cmd
}

func readSource(stdin io.Reader, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(data), nil
}
