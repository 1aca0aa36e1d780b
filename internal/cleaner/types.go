package cleaner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	missingFunctionNameErrorMessageConstant = "function name must be provided (--func-name)"
	negativeDaysErrorMessageConstant        = "days must not be negative"
)

// ErrMissingFunctionName indicates that no function name was supplied.
var ErrMissingFunctionName = errors.New(missingFunctionNameErrorMessageConstant)

// ErrNegativeDays indicates a negative retention window.
var ErrNegativeDays = errors.New(negativeDaysErrorMessageConstant)

// Options captures the fully resolved parameters of one cleaner invocation.
type Options struct {
	Region           string
	FunctionName     string
	Days             int
	ProtectedVersion string
	NoDryRun         bool
	AssumeYes        bool
	EndpointURL      string
	PageSize         int
}

// Validate reports option errors that must stop the run before any provider call.
func (options Options) Validate() error {
	if len(strings.TrimSpace(options.FunctionName)) == 0 {
		return ErrMissingFunctionName
	}
	if options.Days < 0 {
		return ErrNegativeDays
	}
	return nil
}

// Result summarizes a completed invocation.
type Result struct {
	Plan      retention.Plan
	Confirmed bool
	Deletion  DeletionReport
}

// VersionLister enumerates aliases and versions of a function.
type VersionLister interface {
	ListAliases(executionContext context.Context, functionName string) ([]retention.AliasRecord, error)
	ListVersions(executionContext context.Context, functionName string) ([]retention.VersionRecord, error)
}

// VersionDeleter removes a single qualified function version.
type VersionDeleter interface {
	DeleteVersion(executionContext context.Context, functionName string, version string) error
}

// VersionProvider combines the listing and deletion operations used by Service.
type VersionProvider interface {
	VersionLister
	VersionDeleter
}

// ConfirmationPrompter prompts users for confirmation before destructive operations.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
