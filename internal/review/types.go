package review

import (
	"fmt"
	"strings"
)

// Severity levels accepted for issues and security findings.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Suggestion categories accepted from the reviewer.
const (
	CategoryPerformance     = "performance"
	CategoryReadability     = "readability"
	CategoryMaintainability = "maintainability"
)

// Issue describes a single problem the reviewer found in the submitted code.
type Issue struct {
	Severity   string `json:"severity"`
	Line       *int   `json:"line,omitempty"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Suggestion is a non-defect improvement recommendation.
type Suggestion struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// SecurityFinding flags a potential vulnerability.
type SecurityFinding struct {
	Severity       string `json:"severity"`
	Vulnerability  string `json:"vulnerability"`
	Recommendation string `json:"recommendation"`
}

// BestPractice contrasts what the code does with what it should do.
type BestPractice struct {
	Practice    string `json:"practice"`
	Current     string `json:"current"`
	Recommended string `json:"recommended"`
}

// Result is the full structured payload returned by the external reviewer.
// The cache and history layers treat it as opaque beyond Validate.
type Result struct {
	OverallScore  int               `json:"overallScore"`
	Issues        []Issue           `json:"issues"`
	Suggestions   []Suggestion      `json:"suggestions"`
	Security      []SecurityFinding `json:"security"`
	BestPractices []BestPractice    `json:"bestPractices"`
	Summary       string            `json:"summary"`
}

// Validate checks the structural invariants of a reviewer payload. A payload
// that fails validation is treated as an unparseable reviewer response, never
// as a partial result.
func (r *Result) Validate() error {
	if r == nil {
		return fmt.Errorf("review result: nil")
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("review result: overall score %d out of range [0,100]", r.OverallScore)
	}
	for i, issue := range r.Issues {
		if !validIssueSeverity(issue.Severity) {
			return fmt.Errorf("review result: issue %d: invalid severity %q", i, issue.Severity)
		}
		if issue.Line != nil && *issue.Line < 1 {
			return fmt.Errorf("review result: issue %d: line %d must be positive", i, *issue.Line)
		}
	}
	for i, suggestion := range r.Suggestions {
		if !validCategory(suggestion.Category) {
			return fmt.Errorf("review result: suggestion %d: invalid category %q", i, suggestion.Category)
		}
		if !validIssueSeverity(suggestion.Impact) {
			return fmt.Errorf("review result: suggestion %d: invalid impact %q", i, suggestion.Impact)
		}
	}
	for i, finding := range r.Security {
		if !validSecuritySeverity(finding.Severity) {
			return fmt.Errorf("review result: security finding %d: invalid severity %q", i, finding.Severity)
		}
	}
	return nil
}

func validIssueSeverity(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

func validSecuritySeverity(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

func validCategory(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case CategoryPerformance, CategoryReadability, CategoryMaintainability:
		return true
	}
	return false
}
