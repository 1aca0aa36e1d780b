package cleaner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/lambdaversions"
)

const (
	deletingVersionTemplateConstant       = "Deleting version %s of %s\n"
	deletedVersionTemplateConstant        = "\tDeleted version %s\n"
	deleteFailedTemplateConstant          = "\tError deleting version %s: %s\n"
	versionDeletedLogMessageConstant      = "version deleted"
	versionDeleteFailedLogMessageConstant = "version deletion failed"
	logFieldVersionConstant               = "version"
)

// DeletionResult records the outcome of a single delete attempt.
type DeletionResult struct {
	Version string
	Err     error
}

// Succeeded reports whether the version was removed.
func (result DeletionResult) Succeeded() bool {
	return result.Err == nil
}

// DeletionReport collects per-version outcomes in the order they were attempted.
type DeletionReport struct {
	Results []DeletionResult
}

// Succeeded returns the versions that were deleted.
func (report DeletionReport) Succeeded() []string {
	var versions []string
	for _, result := range report.Results {
		if result.Succeeded() {
			versions = append(versions, result.Version)
		}
	}
	return versions
}

// Failed returns the results whose deletion failed.
func (report DeletionReport) Failed() []DeletionResult {
	var failures []DeletionResult
	for _, result := range report.Results {
		if !result.Succeeded() {
			failures = append(failures, result)
		}
	}
	return failures
}

// DeletionExecutor deletes versions one at a time and never stops on a failed item.
type DeletionExecutor struct {
	deleter      VersionDeleter
	outputWriter io.Writer
	logger       *zap.Logger
}

// NewDeletionExecutor constructs an executor writing progress to outputWriter.
func NewDeletionExecutor(deleter VersionDeleter, outputWriter io.Writer, logger *zap.Logger) *DeletionExecutor {
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeletionExecutor{deleter: deleter, outputWriter: outputWriter, logger: logger}
}

// Execute attempts to delete every version in purgeList.
func (executor *DeletionExecutor) Execute(executionContext context.Context, functionName string, purgeList []string) DeletionReport {
	report := DeletionReport{Results: make([]DeletionResult, 0, len(purgeList))}

	for _, version := range purgeList {
		fmt.Fprintf(executor.outputWriter, deletingVersionTemplateConstant, version, functionName)

		deleteError := executor.deleter.DeleteVersion(executionContext, functionName, version)
		report.Results = append(report.Results, DeletionResult{Version: version, Err: deleteError})

		if deleteError != nil {
			fmt.Fprintf(executor.outputWriter, deleteFailedTemplateConstant, version, lambdaversions.DescribeFailure(deleteError))
			executor.logger.Warn(
				versionDeleteFailedLogMessageConstant,
				zap.String(logFieldFunctionNameConstant, functionName),
				zap.String(logFieldVersionConstant, version),
				zap.Error(deleteError),
			)
			continue
		}

		fmt.Fprintf(executor.outputWriter, deletedVersionTemplateConstant, version)
		executor.logger.Info(
			versionDeletedLogMessageConstant,
			zap.String(logFieldFunctionNameConstant, functionName),
			zap.String(logFieldVersionConstant, version),
		)
	}

	return report
}
