package balance

import (
	"fmt"
	"strings"

	pathutils "github.com/temirov/ppcheck/internal/utils/path"
)

const (
	defaultRootPathConstant              = "core/src"
	defaultSourceExtensionConstant       = ".cpp"
	defaultHeaderExtensionConstant       = ".h"
	extensionSeparatorConstant           = "."
	configurationRootKeyConstant         = "root"
	configurationExtensionsKeyConstant   = "extensions"
	configurationJobsKeyConstant         = "jobs"
	configurationColorKeyConstant        = "color"
	configurationKeySeparatorConstant    = "."
	unsupportedColorModeTemplateConstant = "unsupported color mode: %s"
)

var configurationHomeExpander = pathutils.NewHomeExpander()

// CommandConfiguration captures persistent settings for the check command.
type CommandConfiguration struct {
	Root       string   `mapstructure:"root"`
	Extensions []string `mapstructure:"extensions"`
	Jobs       int      `mapstructure:"jobs"`
	Color      string   `mapstructure:"color"`
}

// DefaultCommandConfiguration returns baseline configuration values for the check command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root:       defaultRootPathConstant,
		Extensions: []string{defaultSourceExtensionConstant, defaultHeaderExtensionConstant},
		Jobs:       0,
		Color:      string(ColorModeAuto),
	}
}

// DefaultConfigurationValues produces Viper defaults for the check command under rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRootKeyConstant:       defaults.Root,
		rootKey + configurationKeySeparatorConstant + configurationExtensionsKeyConstant: defaults.Extensions,
		rootKey + configurationKeySeparatorConstant + configurationJobsKeyConstant:       defaults.Jobs,
		rootKey + configurationKeySeparatorConstant + configurationColorKeyConstant:      defaults.Color,
	}
}

// Sanitize trims configured values, expands the home directory in the root and
// falls back to defaults for empty values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.Root = sanitizeRoot(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaults.Root
	}

	sanitized.Extensions = NormalizeExtensions(configuration.Extensions)
	if len(sanitized.Extensions) == 0 {
		sanitized.Extensions = defaults.Extensions
	}

	sanitized.Color = strings.ToLower(strings.TrimSpace(configuration.Color))
	if len(sanitized.Color) == 0 {
		sanitized.Color = defaults.Color
	}

	return sanitized
}

// NormalizeExtensions trims extensions, prefixes a dot where missing and
// removes empty and duplicate entries while keeping their order.
func NormalizeExtensions(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 || trimmed == extensionSeparatorConstant {
			continue
		}
		if !strings.HasPrefix(trimmed, extensionSeparatorConstant) {
			trimmed = extensionSeparatorConstant + trimmed
		}
		if _, duplicate := seen[trimmed]; duplicate {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// ParseColorMode validates a color mode value.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case ColorModeAuto, "":
		return ColorModeAuto, nil
	case ColorModeAlways:
		return ColorModeAlways, nil
	case ColorModeNever:
		return ColorModeNever, nil
	default:
		return "", fmt.Errorf(unsupportedColorModeTemplateConstant, value)
	}
}

func sanitizeRoot(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	return configurationHomeExpander.Expand(trimmed)
}
