// Package balance implements the directive balance check used by the ppcheck
// CLI.
//
// It exposes CommandBuilder for wiring the check Cobra command, Service for
// driving the check programmatically, Reporter for rendering the human
// readable report, and the collaborator interfaces used to discover and read
// source files.
package balance
