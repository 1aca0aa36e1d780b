package cleaner_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/lambda-version-cleaner/internal/cleaner"
	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	serviceFunctionNameConstant  = "orders-handler"
	serviceRetentionDaysConstant = 30
)

var serviceNow = time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

func defaultVersions() []retention.VersionRecord {
	return []retention.VersionRecord{
		{Identifier: retention.DefaultProtectedMarker, LastModified: day(2024, time.January, 1)},
		{Identifier: "1", LastModified: day(2024, time.January, 1)},
		{Identifier: "2", LastModified: day(2024, time.February, 1)},
		{Identifier: "3", LastModified: day(2024, time.March, 1)},
		{Identifier: "4", LastModified: day(2024, time.May, 20)},
	}
}

func defaultAliases() []retention.AliasRecord {
	return []retention.AliasRecord{{Name: "prod", TargetVersion: "2"}}
}

func TestServiceExecuteScenarios(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name                  string
		provider              *stubVersionProvider
		prompter              *stubPrompter
		options               cleaner.Options
		expectedOutcome       retention.Outcome
		expectedPurgeList     []string
		expectedDeleted       []string
		expectedPromptCount   int
		expectedConfirmed     bool
		expectedOutputSnippet []string
		unexpectedOutput      []string
	}{
		{
			name:              "dry_run_lists_without_deleting",
			provider:          &stubVersionProvider{versions: defaultVersions(), aliases: defaultAliases()},
			prompter:          &stubPrompter{response: true},
			options:           cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant},
			expectedOutcome:   retention.OutcomeEligible,
			expectedPurgeList: []string{"1", "3"},
			expectedOutputSnippet: []string{
				"Getting versions for orders-handler 30 days or older",
				"Version $LATEST is the protected current version. WON'T be deleted",
				"Version 2 is aliased as prod. WON'T be deleted",
				"The following versions of orders-handler can be deleted.\n[1, 3]",
			},
			unexpectedOutput: []string{"PERMANENTLY", "DELETING"},
		},
		{
			name: "nothing_older_than_cutoff",
			provider: &stubVersionProvider{versions: []retention.VersionRecord{
				{Identifier: "9", LastModified: day(2024, time.May, 30)},
			}},
			prompter:              &stubPrompter{response: true},
			options:               cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedOutcome:       retention.OutcomeNothingOlderThanCutoff,
			expectedOutputSnippet: []string{"No Lambda function versions for orders-handler older than 30 days."},
			unexpectedOutput:      []string{"Nothing to list or delete", "Getting versions"},
		},
		{
			name: "everything_aged_is_protected",
			provider: &stubVersionProvider{
				versions: []retention.VersionRecord{{Identifier: "2", LastModified: day(2024, time.February, 1)}},
				aliases:  defaultAliases(),
			},
			prompter:              &stubPrompter{response: true},
			options:               cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedOutcome:       retention.OutcomeNothingToPurge,
			expectedOutputSnippet: []string{"Version 2 is aliased as prod", "Nothing to list or delete. Exiting. No changes made."},
			unexpectedOutput:      []string{"older than 30 days"},
		},
		{
			name:                  "declined_confirmation_makes_no_changes",
			provider:              &stubVersionProvider{versions: defaultVersions(), aliases: defaultAliases()},
			prompter:              &stubPrompter{response: false},
			options:               cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedOutcome:       retention.OutcomeEligible,
			expectedPurgeList:     []string{"1", "3"},
			expectedPromptCount:   1,
			expectedOutputSnippet: []string{"WILL be PERMANENTLY DELETED.\n[1, 3]", "Exiting. No changes made"},
			unexpectedOutput:      []string{"DELETING"},
		},
		{
			name:                "confirmed_deletion_removes_each_version",
			provider:            &stubVersionProvider{versions: defaultVersions(), aliases: defaultAliases()},
			prompter:            &stubPrompter{response: true},
			options:             cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedOutcome:     retention.OutcomeEligible,
			expectedPurgeList:   []string{"1", "3"},
			expectedDeleted:     []string{"1", "3"},
			expectedPromptCount: 1,
			expectedConfirmed:   true,
			expectedOutputSnippet: []string{
				"DELETING LAMBDA VERSIONS:",
				"Deleting version 1 of orders-handler",
				"Deleting version 3 of orders-handler",
				"Deleted 2 of 2 versions of orders-handler; 0 failed.",
			},
		},
		{
			name:                  "assume_yes_skips_prompt",
			provider:              &stubVersionProvider{versions: defaultVersions(), aliases: defaultAliases()},
			prompter:              &stubPrompter{response: false},
			options:               cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true, AssumeYes: true},
			expectedOutcome:       retention.OutcomeEligible,
			expectedPurgeList:     []string{"1", "3"},
			expectedDeleted:       []string{"1", "3"},
			expectedConfirmed:     true,
			expectedOutputSnippet: []string{"DELETING LAMBDA VERSIONS:"},
		},
		{
			name:              "custom_protected_version_adds_to_latest",
			provider:          &stubVersionProvider{versions: defaultVersions()},
			prompter:          &stubPrompter{},
			options:           cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, ProtectedVersion: "1"},
			expectedOutcome:   retention.OutcomeEligible,
			expectedPurgeList: []string{"2", "3"},
			expectedOutputSnippet: []string{
				"Version $LATEST is the protected current version. WON'T be deleted",
				"Version 1 is a protected version. WON'T be deleted",
			},
		},
		{
			name: "custom_protected_version_never_deletes_latest",
			provider: &stubVersionProvider{versions: []retention.VersionRecord{
				{Identifier: retention.DefaultProtectedMarker, LastModified: day(2024, time.January, 1)},
				{Identifier: "1", LastModified: day(2024, time.January, 1)},
			}},
			prompter: &stubPrompter{response: true},
			options: cleaner.Options{
				FunctionName:     serviceFunctionNameConstant,
				Days:             serviceRetentionDaysConstant,
				ProtectedVersion: "1",
				NoDryRun:         true,
				AssumeYes:        true,
			},
			expectedOutcome:       retention.OutcomeNothingToPurge,
			expectedOutputSnippet: []string{"Nothing to list or delete. Exiting. No changes made."},
			unexpectedOutput:      []string{"DELETING"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			outputBuffer := &strings.Builder{}
			service := cleaner.NewService(testCase.provider, testCase.prompter, outputBuffer, zap.NewNop(), fixedClock{now: serviceNow})

			result, executionError := service.Execute(context.Background(), testCase.options)
			require.NoError(subTest, executionError)

			require.Equal(subTest, testCase.expectedOutcome, result.Plan.Outcome)
			require.Equal(subTest, testCase.expectedPurgeList, result.Plan.PurgeList)
			require.Equal(subTest, testCase.expectedDeleted, testCase.provider.deletedVersions)
			require.Len(subTest, testCase.prompter.prompts, testCase.expectedPromptCount)
			require.Equal(subTest, testCase.expectedConfirmed, result.Confirmed)

			output := outputBuffer.String()
			for _, snippet := range testCase.expectedOutputSnippet {
				require.Contains(subTest, output, snippet)
			}
			for _, snippet := range testCase.unexpectedOutput {
				require.NotContains(subTest, output, snippet)
			}
		})
	}
}

func TestServiceExecuteContinuesAfterDeleteFailure(testInstance *testing.T) {
	testInstance.Parallel()

	deleteFailure := errors.New("access denied")
	provider := &stubVersionProvider{
		versions:     defaultVersions(),
		deleteErrors: map[string]error{"1": deleteFailure},
	}
	outputBuffer := &strings.Builder{}
	service := cleaner.NewService(provider, &stubPrompter{response: true}, outputBuffer, zap.NewNop(), fixedClock{now: serviceNow})

	result, executionError := service.Execute(context.Background(), cleaner.Options{
		FunctionName: serviceFunctionNameConstant,
		Days:         serviceRetentionDaysConstant,
		NoDryRun:     true,
	})
	require.NoError(testInstance, executionError)

	require.Equal(testInstance, []string{"1", "2", "3"}, provider.deletedVersions)
	require.Equal(testInstance, []string{"2", "3"}, result.Deletion.Succeeded())
	require.Len(testInstance, result.Deletion.Failed(), 1)
	require.Equal(testInstance, "1", result.Deletion.Failed()[0].Version)
	require.ErrorIs(testInstance, result.Deletion.Failed()[0].Err, deleteFailure)
	require.Contains(testInstance, outputBuffer.String(), "Error deleting version 1: access denied")
	require.Contains(testInstance, outputBuffer.String(), "Deleted 2 of 3 versions of orders-handler; 1 failed.")
}

func TestServiceExecuteFailures(testInstance *testing.T) {
	testInstance.Parallel()

	listingFailure := errors.New("expired token")
	promptFailure := errors.New("terminal closed")

	testCases := []struct {
		name                 string
		provider             *stubVersionProvider
		prompter             *stubPrompter
		options              cleaner.Options
		expectedError        error
		expectedAliasCalls   int
		expectedVersionCalls int
	}{
		{
			name:          "missing_function_name",
			provider:      &stubVersionProvider{},
			prompter:      &stubPrompter{},
			options:       cleaner.Options{Days: serviceRetentionDaysConstant},
			expectedError: cleaner.ErrMissingFunctionName,
		},
		{
			name:          "negative_days",
			provider:      &stubVersionProvider{},
			prompter:      &stubPrompter{},
			options:       cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: -5},
			expectedError: cleaner.ErrNegativeDays,
		},
		{
			name:               "alias_listing_failure",
			provider:           &stubVersionProvider{aliasError: listingFailure},
			prompter:           &stubPrompter{},
			options:            cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant},
			expectedError:      listingFailure,
			expectedAliasCalls: 1,
		},
		{
			name:                 "version_listing_failure",
			provider:             &stubVersionProvider{versionError: listingFailure},
			prompter:             &stubPrompter{},
			options:              cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedError:        listingFailure,
			expectedAliasCalls:   1,
			expectedVersionCalls: 1,
		},
		{
			name:                 "prompt_failure",
			provider:             &stubVersionProvider{versions: defaultVersions()},
			prompter:             &stubPrompter{err: promptFailure},
			options:              cleaner.Options{FunctionName: serviceFunctionNameConstant, Days: serviceRetentionDaysConstant, NoDryRun: true},
			expectedError:        promptFailure,
			expectedAliasCalls:   1,
			expectedVersionCalls: 1,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			service := cleaner.NewService(testCase.provider, testCase.prompter, nil, nil, fixedClock{now: serviceNow})

			_, executionError := service.Execute(context.Background(), testCase.options)
			require.ErrorIs(subTest, executionError, testCase.expectedError)
			require.Equal(subTest, testCase.expectedAliasCalls, testCase.provider.aliasCalls)
			require.Equal(subTest, testCase.expectedVersionCalls, testCase.provider.versionCalls)
			require.Empty(subTest, testCase.provider.deletedVersions)
		})
	}
}
