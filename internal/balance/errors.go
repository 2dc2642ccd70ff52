package balance

import (
	"errors"
	"fmt"
)

// Process exit codes returned by the check command.
const (
	ExitCodeIssuesFound  = 1
	ExitCodeSetupFailure = 2
)

const issuesFoundTemplateConstant = "%w: %d issue(s) in %d file(s)"

var (
	// ErrRootNotFound indicates the root directory does not exist.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrRootNotDirectory indicates the root path is not a directory.
	ErrRootNotDirectory = errors.New("root path is not a directory")
	// ErrIssuesFound indicates the check completed and reported balance issues.
	ErrIssuesFound = errors.New("unbalanced preprocessor directives found")
)

// ExitStatusError carries the process exit status associated with an error.
type ExitStatusError struct {
	Code  int
	Cause error
}

// NewExitStatusError wraps cause with an exit status.
func NewExitStatusError(code int, cause error) ExitStatusError {
	return ExitStatusError{Code: code, Cause: cause}
}

func (exitStatusError ExitStatusError) Error() string {
	if exitStatusError.Cause == nil {
		return fmt.Sprintf("exit status %d", exitStatusError.Code)
	}
	return exitStatusError.Cause.Error()
}

// Unwrap exposes the underlying cause.
func (exitStatusError ExitStatusError) Unwrap() error {
	return exitStatusError.Cause
}

// ExitCode returns the process exit status.
func (exitStatusError ExitStatusError) ExitCode() int {
	return exitStatusError.Code
}

func newIssuesFoundError(summary Summary) error {
	return NewExitStatusError(
		ExitCodeIssuesFound,
		fmt.Errorf(issuesFoundTemplateConstant, ErrIssuesFound, summary.TotalIssues, summary.FilesWithIssues),
	)
}
