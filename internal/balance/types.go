package balance

import "github.com/temirov/ppcheck/internal/directives"

// ColorMode selects when the report is colorized.
type ColorMode string

// Supported color modes.
const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

// CommandOptions captures the configurable parameters for a balance check run.
type CommandOptions struct {
	Root       string
	Extensions []string
	Jobs       int
	Color      bool
	Quiet      bool
}

// FileReport holds the issues found in one source file.
type FileReport struct {
	Path         string
	RelativePath string
	Issues       []directives.Issue
}

// Summary aggregates the outcome of a balance check run.
type Summary struct {
	Root            string
	FilesScanned    int
	FilesWithIssues int
	TotalIssues     int
	FileReports     []FileReport
}

// Clean reports whether the run found no issues.
func (summary Summary) Clean() bool {
	return summary.TotalIssues == 0
}
