// Package cli constructs the ppcheck command-line interface, wiring the Cobra
// command hierarchy, the Viper configuration loader and zap logging. ExitCode
// maps command errors to the process exit status.
package cli
