package main

import (
	"fmt"
	"io"
	"strconv"

	"reviewd/internal/dispatch"
	"reviewd/internal/review"
)

func renderReviewResponse(out io.Writer, resp *dispatch.Response) {
	source := "model"
	if resp.Cached {
		source = "cache"
	}
	fmt.Fprintf(out, "Review %s (%s, %s)\n", resp.RecordID, displayLanguage(resp.Language), source)
	fmt.Fprintf(out, "Score: %d/100\n", resp.Result.OverallScore)
	if resp.Result.Summary != "" {
		fmt.Fprintf(out, "Summary: %s\n", resp.Result.Summary)
	}
	renderResult(out, &resp.Result)
}

func renderResult(out io.Writer, result *review.Result) {
	if len(result.Issues) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Issues")
		rows := make([][]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			rows = append(rows, []string{
				issue.Severity,
				formatLine(issue.Line),
				issue.Issue,
				issue.Suggestion,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Severity", "Line", "Issue", "Suggestion"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
		))
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Suggestions")
		rows := make([][]string, 0, len(result.Suggestions))
		for _, s := range result.Suggestions {
			rows = append(rows, []string{s.Category, s.Suggestion, s.Impact})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Category", "Suggestion", "Impact"},
			rows,
			nil,
		))
	}

	if len(result.Security) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Security")
		rows := make([][]string, 0, len(result.Security))
		for _, finding := range result.Security {
			rows = append(rows, []string{finding.Severity, finding.Vulnerability, finding.Recommendation})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Severity", "Vulnerability", "Recommendation"},
			rows,
			nil,
		))
	}

	if len(result.BestPractices) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Best practices")
		rows := make([][]string, 0, len(result.BestPractices))
		for _, bp := range result.BestPractices {
			rows = append(rows, []string{bp.Practice, bp.Current, bp.Recommended})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Practice", "Current", "Recommended"},
			rows,
			nil,
		))
	}
}

func formatLine(line *int) string {
	if line == nil {
		return "-"
	}
	return strconv.Itoa(*line)
}
