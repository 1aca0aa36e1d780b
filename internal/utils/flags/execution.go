// Package flags provides helpers for binding standardized execution flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// NoDryRunFlagName exposes the shared destructive-mode flag name.
	NoDryRunFlagName = "no-dry-run"
	// NoDryRunFlagUsage describes the shared destructive-mode flag purpose.
	NoDryRunFlagUsage = "Delete eligible versions after confirmation instead of only listing them"
	// AssumeYesFlagName exposes the shared assume-yes flag name.
	AssumeYesFlagName = "yes"
	// AssumeYesFlagShorthand provides the shorthand for the assume-yes flag.
	AssumeYesFlagShorthand = "y"
	// AssumeYesFlagUsage describes the shared assume-yes flag purpose.
	AssumeYesFlagUsage = "Automatically confirm the deletion prompt"
)

// ExecutionDefaults describes default flag values shared across commands.
type ExecutionDefaults struct {
	NoDryRun  bool
	AssumeYes bool
}

// ExecutionFlagDefinition captures a single flag's configuration.
type ExecutionFlagDefinition struct {
	Name      string
	Usage     string
	Shorthand string
	Enabled   bool
}

// ExecutionFlagDefinitions groups execution flag definitions.
type ExecutionFlagDefinitions struct {
	NoDryRun  ExecutionFlagDefinition
	AssumeYes ExecutionFlagDefinition
}

// DefaultExecutionFlagDefinitions enables both execution flags with their shared names.
func DefaultExecutionFlagDefinitions() ExecutionFlagDefinitions {
	return ExecutionFlagDefinitions{
		NoDryRun:  ExecutionFlagDefinition{Name: NoDryRunFlagName, Usage: NoDryRunFlagUsage, Enabled: true},
		AssumeYes: ExecutionFlagDefinition{Name: AssumeYesFlagName, Usage: AssumeYesFlagUsage, Shorthand: AssumeYesFlagShorthand, Enabled: true},
	}
}

// BindExecutionFlags attaches standardized execution flags to the provided command using persistent scope.
func BindExecutionFlags(command *cobra.Command, defaults ExecutionDefaults, definitions ExecutionFlagDefinitions) {
	if command == nil {
		return
	}

	persistentFlagSet := command.PersistentFlags()

	bindBoolFlag(persistentFlagSet, definitions.NoDryRun, defaults.NoDryRun)
	bindBoolFlag(persistentFlagSet, definitions.AssumeYes, defaults.AssumeYes)
}

// ResolveBool returns the flag value when it was explicitly set and the configured value otherwise.
func ResolveBool(command *cobra.Command, flagName string, configuredValue bool) (bool, error) {
	if command == nil {
		return configuredValue, nil
	}

	flagSet := command.Flags()
	if flagSet.Lookup(flagName) == nil || !flagSet.Changed(flagName) {
		return configuredValue, nil
	}

	return flagSet.GetBool(flagName)
}

func bindBoolFlag(flagSet *pflag.FlagSet, definition ExecutionFlagDefinition, defaultValue bool) {
	if flagSet == nil {
		return
	}
	if !definition.Enabled {
		return
	}
	if len(definition.Name) == 0 {
		return
	}

	if len(definition.Shorthand) > 0 {
		flagSet.BoolP(definition.Name, definition.Shorthand, defaultValue, definition.Usage)
		return
	}

	flagSet.Bool(definition.Name, defaultValue, definition.Usage)
}
