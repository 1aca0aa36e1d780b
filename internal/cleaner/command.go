package cleaner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/utils"
	flagutils "github.com/temirov/lambda-version-cleaner/internal/utils/flags"
)

const (
	commandUseConstant                      = "lambda-version-cleaner"
	commandShortDescriptionConstant         = "List or delete old AWS Lambda function versions"
	commandLongDescriptionConstant          = "lambda-version-cleaner lists versions of a Lambda function that are older than a number of days and are neither aliased nor $LATEST. With --no-dry-run the listed versions are PERMANENTLY DELETED after confirmation."
	unexpectedArgumentsErrorMessageConstant = "lambda-version-cleaner does not accept positional arguments"
	commandExecutionErrorTemplateConstant   = "lambda version cleanup failed: %w"
	reportOutputErrorTemplateConstant       = "unable to write report: %w"
	regionFlagNameConstant                  = "region"
	regionFlagDescriptionConstant           = "Region that the Lambda function is located in"
	functionNameFlagNameConstant            = "func-name"
	functionNameFlagDescriptionConstant     = "Name of the Lambda function"
	daysFlagNameConstant                    = "days"
	daysFlagDescriptionConstant             = "Versions last modified this many days ago or earlier are listed or deleted"
	protectedVersionFlagNameConstant        = "protected-version"
	protectedVersionFlagDescriptionConstant = "Version identifier that is never deleted"
	endpointURLFlagNameConstant             = "endpoint-url"
	endpointURLFlagDescriptionConstant      = "Override the Lambda API endpoint"
	pageSizeFlagNameConstant                = "page-size"
	pageSizeFlagDescriptionConstant         = "Maximum items requested per listing page (0 uses the provider default)"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current cleaner configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the cleaner command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ProviderResolver      ProviderResolver
	Clock                 Clock
}

// Build constructs the cleaner command with its flags.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	defaults := DefaultConfiguration()

	command.Flags().String(regionFlagNameConstant, defaults.Region, regionFlagDescriptionConstant)
	command.Flags().String(functionNameFlagNameConstant, "", functionNameFlagDescriptionConstant)
	command.Flags().Int(daysFlagNameConstant, defaults.Days, daysFlagDescriptionConstant)
	command.Flags().String(protectedVersionFlagNameConstant, defaults.ProtectedVersion, protectedVersionFlagDescriptionConstant)
	command.Flags().String(endpointURLFlagNameConstant, "", endpointURLFlagDescriptionConstant)
	command.Flags().Int(pageSizeFlagNameConstant, 0, pageSizeFlagDescriptionConstant)

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{}, flagutils.DefaultExecutionFlagDefinitions())

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}
	if validationError := options.Validate(); validationError != nil {
		return validationError
	}

	logger := builder.resolveLogger()
	provider, providerError := builder.resolveProvider(command, logger, options)
	if providerError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, providerError)
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	prompter := NewIOConfirmationPrompter(command.InOrStdin(), outputWriter)
	service := NewService(provider, prompter, outputWriter, logger, builder.Clock)

	if _, executionError := service.Execute(command.Context(), options); executionError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, executionError)
	}

	if outputError := outputWriter.Err(); outputError != nil {
		return fmt.Errorf(reportOutputErrorTemplateConstant, outputError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (Options, error) {
	configuration := builder.resolveConfiguration()

	regionValue, regionError := resolveStringFlag(command, regionFlagNameConstant, configuration.Region)
	if regionError != nil {
		return Options{}, regionError
	}

	functionNameValue, functionNameError := resolveStringFlag(command, functionNameFlagNameConstant, configuration.FunctionName)
	if functionNameError != nil {
		return Options{}, functionNameError
	}

	protectedVersionValue, protectedVersionError := resolveStringFlag(command, protectedVersionFlagNameConstant, configuration.ProtectedVersion)
	if protectedVersionError != nil {
		return Options{}, protectedVersionError
	}

	endpointURLValue, endpointURLError := resolveStringFlag(command, endpointURLFlagNameConstant, configuration.EndpointURL)
	if endpointURLError != nil {
		return Options{}, endpointURLError
	}

	daysValue, daysError := resolveIntFlag(command, daysFlagNameConstant, configuration.Days)
	if daysError != nil {
		return Options{}, daysError
	}

	pageSizeValue, pageSizeError := resolveIntFlag(command, pageSizeFlagNameConstant, configuration.PageSize)
	if pageSizeError != nil {
		return Options{}, pageSizeError
	}

	noDryRunValue, noDryRunError := flagutils.ResolveBool(command, flagutils.NoDryRunFlagName, configuration.NoDryRun)
	if noDryRunError != nil {
		return Options{}, noDryRunError
	}

	// Only an explicit --yes on this invocation skips the confirmation prompt.
	assumeYesValue, assumeYesError := flagutils.ResolveBool(command, flagutils.AssumeYesFlagName, false)
	if assumeYesError != nil {
		return Options{}, assumeYesError
	}

	options := Options{
		Region:           regionValue,
		FunctionName:     functionNameValue,
		Days:             daysValue,
		ProtectedVersion: protectedVersionValue,
		NoDryRun:         noDryRunValue,
		AssumeYes:        assumeYesValue,
		EndpointURL:      endpointURLValue,
		PageSize:         pageSizeValue,
	}

	return options, nil
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

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveProvider(command *cobra.Command, logger *zap.Logger, options Options) (VersionProvider, error) {
	resolver := builder.ProviderResolver
	if resolver == nil {
		resolver = DefaultProviderResolver{}
	}
	return resolver.Resolve(command.Context(), logger, options)
}

func resolveStringFlag(command *cobra.Command, flagName string, configuredValue string) (string, error) {
	if !command.Flags().Changed(flagName) {
		return strings.TrimSpace(configuredValue), nil
	}

	flagValue, flagError := command.Flags().GetString(flagName)
	if flagError != nil {
		return "", flagError
	}

	return strings.TrimSpace(flagValue), nil
}

func resolveIntFlag(command *cobra.Command, flagName string, configuredValue int) (int, error) {
	if !command.Flags().Changed(flagName) {
		return configuredValue, nil
	}
	return command.Flags().GetInt(flagName)
}
