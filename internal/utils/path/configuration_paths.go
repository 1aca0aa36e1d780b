// Package pathutils resolves user-supplied configuration paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
	currentDirectoryConstant        = "."
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// DirectoryProvider resolves a user-scoped directory such as the home or configuration directory.
type DirectoryProvider func() (string, error)

// ConfigurationPathResolver expands configuration file paths and lists the directories searched for them.
type ConfigurationPathResolver struct {
	homeDirectoryProvider          DirectoryProvider
	configurationDirectoryProvider DirectoryProvider
	homeDirectory                  string
	homeDirectoryError             error
	initializationGuard            sync.Once
}

// NewConfigurationPathResolver constructs a resolver backed by the operating system lookups.
func NewConfigurationPathResolver() *ConfigurationPathResolver {
	return NewConfigurationPathResolverWithProviders(os.UserHomeDir, os.UserConfigDir)
}

// NewConfigurationPathResolverWithProviders constructs a resolver with custom directory lookups.
func NewConfigurationPathResolverWithProviders(homeDirectoryProvider DirectoryProvider, configurationDirectoryProvider DirectoryProvider) *ConfigurationPathResolver {
	if homeDirectoryProvider == nil {
		homeDirectoryProvider = os.UserHomeDir
	}
	if configurationDirectoryProvider == nil {
		configurationDirectoryProvider = os.UserConfigDir
	}
	return &ConfigurationPathResolver{
		homeDirectoryProvider:          homeDirectoryProvider,
		configurationDirectoryProvider: configurationDirectoryProvider,
	}
}

// Expand trims the path, expands environment variables, and resolves a leading tilde to the home directory.
func (resolver *ConfigurationPathResolver) Expand(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if resolver == nil || len(trimmedPath) == 0 {
		return trimmedPath
	}

	expandedPath := os.ExpandEnv(trimmedPath)
	if !strings.HasPrefix(expandedPath, tildeSymbolConstant) {
		return expandedPath
	}

	resolvedHomeDirectory := resolver.resolveHomeDirectory()
	if len(resolvedHomeDirectory) == 0 {
		return expandedPath
	}

	if expandedPath == tildeSymbolConstant {
		return resolvedHomeDirectory
	}

	for _, prefix := range []string{tildeForwardSlashPrefixConstant, tildeWithPathSeparatorPrefix} {
		if strings.HasPrefix(expandedPath, prefix) {
			return filepath.Join(resolvedHomeDirectory, strings.TrimPrefix(expandedPath, prefix))
		}
	}

	// ~otheruser is left untouched.
	return expandedPath
}

// SearchPaths returns the working directory followed by the application's user configuration directory.
// The user directory is omitted when it cannot be determined.
func (resolver *ConfigurationPathResolver) SearchPaths(applicationName string) []string {
	searchPaths := []string{currentDirectoryConstant}
	if resolver == nil {
		return searchPaths
	}

	configurationBaseDirectory, configurationDirectoryError := resolver.configurationDirectoryProvider()
	if configurationDirectoryError != nil || len(configurationBaseDirectory) == 0 {
		return searchPaths
	}

	return append(searchPaths, filepath.Join(configurationBaseDirectory, applicationName))
}

func (resolver *ConfigurationPathResolver) resolveHomeDirectory() string {
	resolver.initializationGuard.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	if resolver.homeDirectoryError != nil {
		return ""
	}
	return resolver.homeDirectory
}
