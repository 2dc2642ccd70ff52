package balance

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ppcheck/internal/utils"
	"github.com/temirov/ppcheck/internal/utils/flags"
)

const (
	commandUseConstant              = "check [root]"
	commandShortDescriptionConstant = "Report unbalanced #if/#ifdef/#ifndef ... #endif directives"
	commandLongDescriptionConstant  = "check walks the root directory, scans every file with a configured extension for " +
		"conditional-compilation directives and reports unmatched #endif, #else and #elif lines as well as openers " +
		"missing their #endif. It exits with status 1 when issues are found and 2 when the check cannot run."
	negativeJobsErrorMessageConstant = "jobs must not be negative"
	logFieldConfigFileConstant       = "config_file"
)

var colorModeChoices = []string{string(ColorModeAuto), string(ColorModeAlways), string(ColorModeNever)}

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted check configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the check cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Discoverer            SourceDiscoverer
	FileSystem            FileSystem
	TerminalDetector      TerminalDetector
}

// Build constructs the cobra command for the directive balance check.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flags.RootFlagName, "", flags.RootFlagUsage)
	command.Flags().StringSliceP(flags.ExtensionFlagName, flags.ExtensionFlagShorthand, nil, flags.ExtensionFlagUsage)
	command.Flags().IntP(flags.JobsFlagName, flags.JobsFlagShorthand, 0, flags.JobsFlagUsage)
	command.Flags().Var(
		flags.NewChoiceValue(nil, string(ColorModeAuto), colorModeChoices),
		flags.ColorFlagName,
		flags.FormatChoiceUsage(string(ColorModeAuto), colorModeChoices, flags.ColorFlagUsage),
	)
	command.Flags().BoolP(flags.QuietFlagName, flags.QuietFlagShorthand, false, flags.QuietFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	if configurationFilePath, available := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); available && len(configurationFilePath) > 0 {
		logger = logger.With(zap.String(logFieldConfigFileConstant, configurationFilePath))
	}

	service := NewService(builder.Discoverer, builder.FileSystem, logger, utils.NewFlushingWriter(command.OutOrStdout()))
	summary, runError := service.Run(command.Context(), options)
	if runError != nil {
		return runError
	}

	if !summary.Clean() {
		return newIssuesFoundError(summary)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()
	commandFlags := command.Flags()

	if commandFlags.Changed(flags.RootFlagName) {
		configuration.Root, _ = commandFlags.GetString(flags.RootFlagName)
	}
	if len(arguments) > 0 {
		configuration.Root = arguments[0]
	}
	if commandFlags.Changed(flags.ExtensionFlagName) {
		configuration.Extensions, _ = commandFlags.GetStringSlice(flags.ExtensionFlagName)
	}
	if commandFlags.Changed(flags.JobsFlagName) {
		configuration.Jobs, _ = commandFlags.GetInt(flags.JobsFlagName)
	}
	if commandFlags.Changed(flags.ColorFlagName) {
		configuration.Color = commandFlags.Lookup(flags.ColorFlagName).Value.String()
	}

	if configuration.Jobs < 0 {
		return CommandOptions{}, errors.New(negativeJobsErrorMessageConstant)
	}

	configuration = configuration.Sanitize()

	colorMode, colorModeError := ParseColorMode(configuration.Color)
	if colorModeError != nil {
		return CommandOptions{}, colorModeError
	}

	quiet, _ := commandFlags.GetBool(flags.QuietFlagName)

	return CommandOptions{
		Root:       configuration.Root,
		Extensions: configuration.Extensions,
		Jobs:       configuration.Jobs,
		Color:      builder.colorEnabled(colorMode, command),
		Quiet:      quiet,
	}, nil
}

func (builder *CommandBuilder) colorEnabled(colorMode ColorMode, command *cobra.Command) bool {
	switch colorMode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}

	terminalDetector := builder.TerminalDetector
	if terminalDetector == nil {
		terminalDetector = DetectTerminal
	}
	return terminalDetector(command.OutOrStdout())
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
