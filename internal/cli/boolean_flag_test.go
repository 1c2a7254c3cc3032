package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterBooleanFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{
			name:         "defaults_to_false",
			defaultValue: false,
			arguments:    []string{},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_true_without_value",
			defaultValue: false,
			arguments:    []string{"--copy"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "sets_false_with_equals",
			defaultValue: true,
			arguments:    []string{"--copy=false"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_false_with_no_literal",
			defaultValue: true,
			arguments:    []string{"--copy", "no"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "sets_true_with_on_literal",
			defaultValue: false,
			arguments:    []string{"--copy", "on"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "ignores_non_boolean_trailing_value",
			defaultValue: false,
			arguments:    []string{"--copy", "maybe"},
			expected:     true,
			expectError:  false,
		},
		{
			name:         "keeps_literal_after_separator_positional",
			defaultValue: false,
			arguments:    []string{"--", "--copy"},
			expected:     false,
			expectError:  false,
		},
		{
			name:         "rejects_unknown_literal_with_equals",
			defaultValue: false,
			arguments:    []string{"--copy=maybe"},
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "boolean-test"}
			flagSet := command.Flags()
			flagValue := !testCase.defaultValue
			registerBooleanFlag(flagSet, &flagValue, "copy", testCase.defaultValue, "toggle clipboard copying")
			normalizedArguments := normalizeBooleanFlagArguments(command, testCase.arguments)
			parseErr := command.ParseFlags(normalizedArguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if len(testCase.arguments) == 0 && flagValue != testCase.defaultValue {
				t.Fatalf("expected default %t, got %t", testCase.defaultValue, flagValue)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeBooleanFlagArgumentsLeavesOtherFlagsUntouched(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{Use: "boolean-test"}
	var copyValue bool
	registerBooleanFlag(command.Flags(), &copyValue, "copy", false, "toggle clipboard copying")
	command.Flags().StringP("dir-format", "d", "", "directory format")

	arguments := []string{"-d", " [] $NAME", "--copy", "yes", "some-directory"}
	normalized := normalizeBooleanFlagArguments(command, arguments)

	expected := []string{"-d", " [] $NAME", "--copy=yes", "some-directory"}
	if len(normalized) != len(expected) {
		t.Fatalf("expected %d arguments, got %d: %v", len(expected), len(normalized), normalized)
	}
	for position, value := range expected {
		if normalized[position] != value {
			t.Fatalf("expected %q at position %d, got %q", value, position, normalized[position])
		}
	}
}
