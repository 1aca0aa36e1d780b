package cleaner_test

import (
	"context"
	"time"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

type stubVersionProvider struct {
	aliases         []retention.AliasRecord
	versions        []retention.VersionRecord
	aliasError      error
	versionError    error
	deleteErrors    map[string]error
	aliasCalls      int
	versionCalls    int
	deletedVersions []string
	deleteFunctions []string
}

func (provider *stubVersionProvider) ListAliases(executionContext context.Context, functionName string) ([]retention.AliasRecord, error) {
	provider.aliasCalls++
	if provider.aliasError != nil {
		return nil, provider.aliasError
	}
	return provider.aliases, nil
}

func (provider *stubVersionProvider) ListVersions(executionContext context.Context, functionName string) ([]retention.VersionRecord, error) {
	provider.versionCalls++
	if provider.versionError != nil {
		return nil, provider.versionError
	}
	return provider.versions, nil
}

func (provider *stubVersionProvider) DeleteVersion(executionContext context.Context, functionName string, version string) error {
	provider.deletedVersions = append(provider.deletedVersions, version)
	provider.deleteFunctions = append(provider.deleteFunctions, functionName)
	if deleteError, exists := provider.deleteErrors[version]; exists {
		return deleteError
	}
	return nil
}

type stubPrompter struct {
	response bool
	err      error
	prompts  []string
}

func (prompter *stubPrompter) Confirm(prompt string) (bool, error) {
	prompter.prompts = append(prompter.prompts, prompt)
	return prompter.response, prompter.err
}

type fixedClock struct {
	now time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.now
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
