package main

import (
	"fmt"
	"os"

	"github.com/temirov/ppcheck/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the ppcheck command-line application.
func main() {
	executionError := cli.Execute()
	if cli.ShouldReport(executionError) {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	}
	os.Exit(cli.ExitCode(executionError))
}
