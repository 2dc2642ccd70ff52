package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "auto",
			choices:        []string{"auto", "always", "never"},
			description:    "Colorize the report.",
			expectedOutput: "`<AUTO|always|never>` Colorize the report.",
		},
		{
			name:           "DefaultLastChoice",
			defaultChoice:  "never",
			choices:        []string{"auto", "always", "never"},
			description:    "Colorize the report.",
			expectedOutput: "`<auto|always|NEVER>` Colorize the report.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "console",
			choices:        []string{"structured", "console"},
			description:    "",
			expectedOutput: "`<structured|CONSOLE>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "always",
			choices:        []string{"always", "always", "never", "never"},
			description:    "Select a mode.",
			expectedOutput: "`<ALWAYS|never>` Select a mode.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  "auto",
			choices:        []string{" auto ", " never "},
			description:    "Pick a mode.",
			expectedOutput: "`<AUTO|never>` Pick a mode.",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}

func TestChoiceValue(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectError   bool
		expectedValue string
	}{
		{
			name:          "DefaultRetained",
			arguments:     []string{},
			expectedValue: "auto",
		},
		{
			name:          "ChoiceAccepted",
			arguments:     []string{"--color", "never"},
			expectedValue: "never",
		},
		{
			name:          "CaseInsensitive",
			arguments:     []string{"--color=ALWAYS"},
			expectedValue: "always",
		},
		{
			name:        "UnknownChoiceRejected",
			arguments:   []string{"--color", "sometimes"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			var selected string
			flagSet := pflag.NewFlagSet(testCase.name, pflag.ContinueOnError)
			flagSet.Var(NewChoiceValue(&selected, "Auto", []string{"auto", "always", "never"}), "color", "")

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(t, parseError)
				return
			}

			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedValue, selected)
			require.Equal(t, testCase.expectedValue, flagSet.Lookup("color").Value.String())
		})
	}
}
