package cleaner

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	retentionQueryErrorTemplateConstant    = "invalid retention parameters: %w"
	aliasListingErrorTemplateConstant      = "unable to list aliases: %w"
	versionListingErrorTemplateConstant    = "unable to list versions: %w"
	confirmationErrorTemplateConstant      = "unable to read confirmation: %w"
	planComputedLogMessageConstant         = "retention plan computed"
	confirmationDeclinedLogMessageConstant = "deletion declined"
	deletionCompletedLogMessageConstant    = "deletion completed"
	logFieldFunctionNameConstant           = "function_name"
	logFieldRegionConstant                 = "region"
	logFieldCutoffConstant                 = "cutoff"
	logFieldOutcomeConstant                = "outcome"
	logFieldVersionCountConstant           = "version_count"
	logFieldAliasCountConstant             = "alias_count"
	logFieldCandidateCountConstant         = "candidate_count"
	logFieldPurgeCountConstant             = "purge_count"
	logFieldDeletedCountConstant           = "deleted_count"
	logFieldFailedCountConstant            = "failed_count"
	logFieldDryRunConstant                 = "dry_run"
)

// Service lists function versions, applies the retention filter, and optionally deletes the result.
type Service struct {
	provider     VersionProvider
	prompter     ConfirmationPrompter
	outputWriter io.Writer
	logger       *zap.Logger
	clock        Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(provider VersionProvider, prompter ConfirmationPrompter, outputWriter io.Writer, logger *zap.Logger, clock Clock) *Service {
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		provider:     provider,
		prompter:     prompter,
		outputWriter: outputWriter,
		logger:       logger,
		clock:        clock,
	}
}

// Execute runs one listing and, when requested and confirmed, one deletion pass.
func (service *Service) Execute(executionContext context.Context, options Options) (Result, error) {
	if validationError := options.Validate(); validationError != nil {
		return Result{}, validationError
	}

	query, queryError := retention.NewQuery(service.clock.Now(), options.Days, options.ProtectedVersion)
	if queryError != nil {
		return Result{}, fmt.Errorf(retentionQueryErrorTemplateConstant, queryError)
	}

	aliases, aliasError := service.provider.ListAliases(executionContext, options.FunctionName)
	if aliasError != nil {
		return Result{}, fmt.Errorf(aliasListingErrorTemplateConstant, aliasError)
	}

	versions, versionError := service.provider.ListVersions(executionContext, options.FunctionName)
	if versionError != nil {
		return Result{}, fmt.Errorf(versionListingErrorTemplateConstant, versionError)
	}

	plan := retention.Filter(versions, aliases, query)
	result := Result{Plan: plan}

	service.logger.Info(
		planComputedLogMessageConstant,
		zap.String(logFieldFunctionNameConstant, options.FunctionName),
		zap.String(logFieldRegionConstant, options.Region),
		zap.String(logFieldCutoffConstant, query.Cutoff.Format(time.RFC3339)),
		zap.Stringer(logFieldOutcomeConstant, plan.Outcome),
		zap.Int(logFieldVersionCountConstant, len(versions)),
		zap.Int(logFieldAliasCountConstant, len(aliases)),
		zap.Int(logFieldCandidateCountConstant, len(plan.Candidates)),
		zap.Int(logFieldPurgeCountConstant, len(plan.PurgeList)),
		zap.Bool(logFieldDryRunConstant, !options.NoDryRun),
	)

	output := reporter{writer: service.outputWriter}

	if plan.Outcome == retention.OutcomeNothingOlderThanCutoff {
		output.nothingOlder(options.FunctionName, options.Days)
		return result, nil
	}

	output.scanning(options.FunctionName, options.Days, plan.Exclusions)

	if plan.Outcome == retention.OutcomeNothingToPurge {
		output.nothingToPurge()
		return result, nil
	}

	if !options.NoDryRun {
		output.dryRunList(options.FunctionName, plan.PurgeList)
		return result, nil
	}

	output.destructiveList(options.FunctionName, plan.PurgeList)

	confirmed, confirmationError := service.confirm(options)
	if confirmationError != nil {
		return result, fmt.Errorf(confirmationErrorTemplateConstant, confirmationError)
	}
	if !confirmed {
		output.declined()
		service.logger.Info(confirmationDeclinedLogMessageConstant, zap.String(logFieldFunctionNameConstant, options.FunctionName))
		return result, nil
	}
	result.Confirmed = true

	output.deletionHeader()
	executor := NewDeletionExecutor(service.provider, service.outputWriter, service.logger)
	result.Deletion = executor.Execute(executionContext, options.FunctionName, plan.PurgeList)
	output.deletionSummary(options.FunctionName, result.Deletion)

	service.logger.Info(
		deletionCompletedLogMessageConstant,
		zap.String(logFieldFunctionNameConstant, options.FunctionName),
		zap.Int(logFieldDeletedCountConstant, len(result.Deletion.Succeeded())),
		zap.Int(logFieldFailedCountConstant, len(result.Deletion.Failed())),
	)

	return result, nil
}

func (service *Service) confirm(options Options) (bool, error) {
	if options.AssumeYes {
		return true, nil
	}
	if service.prompter == nil {
		return false, nil
	}
	return service.prompter.Confirm(confirmationPromptConstant)
}
