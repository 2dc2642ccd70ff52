package balance

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const noColorEnvironmentVariableConstant = "NO_COLOR"

// DetectTerminal reports whether writer is a terminal and NO_COLOR is unset.
func DetectTerminal(writer io.Writer) bool {
	if _, noColorRequested := os.LookupEnv(noColorEnvironmentVariableConstant); noColorRequested {
		return false
	}

	file, isFile := writer.(*os.File)
	if !isFile || file == nil {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
