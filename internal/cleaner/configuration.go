package cleaner

import (
	"strings"

	"github.com/temirov/lambda-version-cleaner/internal/retention"
)

const (
	defaultRegionConstant            = "us-west-2"
	defaultRetentionDaysConstant     = 90
	regionConfigurationKey           = "region"
	functionNameConfigurationKey     = "function_name"
	daysConfigurationKey             = "days"
	noDryRunConfigurationKey         = "no_dry_run"
	protectedVersionConfigurationKey = "protected_version"
	endpointURLConfigurationKey      = "endpoint_url"
	pageSizeConfigurationKey         = "page_size"
	configurationKeySeparator        = "."
)

// Configuration stores persisted settings for the cleaner command.
// There is no assume-yes setting; only the --yes flag skips confirmation.
type Configuration struct {
	Region           string `mapstructure:"region"`
	FunctionName     string `mapstructure:"function_name"`
	Days             int    `mapstructure:"days"`
	NoDryRun         bool   `mapstructure:"no_dry_run"`
	ProtectedVersion string `mapstructure:"protected_version"`
	EndpointURL      string `mapstructure:"endpoint_url"`
	PageSize         int    `mapstructure:"page_size"`
}

// DefaultConfiguration supplies baseline values for the cleaner command.
func DefaultConfiguration() Configuration {
	return Configuration{
		Region:           defaultRegionConstant,
		Days:             defaultRetentionDaysConstant,
		ProtectedVersion: retention.DefaultProtectedMarker,
	}
}

// DefaultConfigurationValues exposes the defaults as Viper keys nested under the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	values := map[string]any{
		regionConfigurationKey:           defaults.Region,
		functionNameConfigurationKey:     defaults.FunctionName,
		daysConfigurationKey:             defaults.Days,
		noDryRunConfigurationKey:         defaults.NoDryRun,
		protectedVersionConfigurationKey: defaults.ProtectedVersion,
		endpointURLConfigurationKey:      defaults.EndpointURL,
		pageSizeConfigurationKey:         defaults.PageSize,
	}

	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return values
	}

	prefixedValues := make(map[string]any, len(values))
	for key, value := range values {
		prefixedValues[trimmedPrefix+configurationKeySeparator+key] = value
	}
	return prefixedValues
}

// Sanitize trims configured values and restores defaults for blank entries.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.Region = strings.TrimSpace(configuration.Region)
	if len(sanitized.Region) == 0 {
		sanitized.Region = defaults.Region
	}

	sanitized.FunctionName = strings.TrimSpace(configuration.FunctionName)

	sanitized.ProtectedVersion = strings.TrimSpace(configuration.ProtectedVersion)
	if len(sanitized.ProtectedVersion) == 0 {
		sanitized.ProtectedVersion = defaults.ProtectedVersion
	}

	sanitized.EndpointURL = strings.TrimSpace(configuration.EndpointURL)
	if sanitized.PageSize < 0 {
		sanitized.PageSize = 0
	}

	return sanitized
}
