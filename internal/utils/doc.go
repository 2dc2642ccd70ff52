// Package utils exposes the configuration, logging and output helpers shared
// by the ppcheck commands.
//
// ConfigurationLoader layers embedded defaults, configuration files and
// PPCHECK_ environment variables through Viper; LoggerFactory builds zap
// loggers in structured or console form.
package utils
