package cli

import (
	"errors"

	"github.com/temirov/ppcheck/internal/balance"
)

const (
	exitCodeSuccessConstant = 0
)

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an execution error to the process exit status. Errors that do
// not carry their own status are treated as setup failures.
func ExitCode(executionError error) int {
	if executionError == nil {
		return exitCodeSuccessConstant
	}

	var coder exitCoder
	if errors.As(executionError, &coder) {
		return coder.ExitCode()
	}

	return balance.ExitCodeSetupFailure
}

// ShouldReport reports whether main should print executionError. Issue
// reports have already been written to standard output.
func ShouldReport(executionError error) bool {
	return executionError != nil && !errors.Is(executionError, balance.ErrIssuesFound)
}
