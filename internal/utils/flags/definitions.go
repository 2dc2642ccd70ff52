// Package flags provides helpers for binding standardized flags to Cobra commands.
package flags

const (
	// RootFlagName exposes the shared source root flag name.
	RootFlagName = "root"
	// RootFlagUsage describes the shared source root flag purpose.
	RootFlagUsage = "Directory to scan for sources (a positional argument takes precedence)"
	// ExtensionFlagName exposes the source extension flag name.
	ExtensionFlagName = "extension"
	// ExtensionFlagShorthand provides the shorthand for the extension flag.
	ExtensionFlagShorthand = "e"
	// ExtensionFlagUsage describes the source extension flag purpose.
	ExtensionFlagUsage = "File extension to scan, one pass per extension in the given order (repeatable)"
	// JobsFlagName exposes the worker count flag name.
	JobsFlagName = "jobs"
	// JobsFlagShorthand provides the shorthand for the jobs flag.
	JobsFlagShorthand = "j"
	// JobsFlagUsage describes the worker count flag purpose.
	JobsFlagUsage = "Number of files scanned concurrently (0 uses all available CPUs)"
	// ColorFlagName exposes the color mode flag name.
	ColorFlagName = "color"
	// ColorFlagUsage describes the color mode flag purpose.
	ColorFlagUsage = "Colorize the report."
	// QuietFlagName exposes the quiet flag name.
	QuietFlagName = "quiet"
	// QuietFlagShorthand provides the shorthand for the quiet flag.
	QuietFlagShorthand = "q"
	// QuietFlagUsage describes the quiet flag purpose.
	QuietFlagUsage = "Print only the per-file issue blocks"
)
