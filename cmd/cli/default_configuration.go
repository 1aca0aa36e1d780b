package cli

import _ "embed"

// defaultConfigurationContent seeds every cleaner key so environment overrides such as
// LAMBDACLEANER_CLEANER_FUNCTION_NAME resolve even when no configuration file exists.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in YAML defaults and their type.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), defaultConfigurationContent...), configurationTypeConstant
}
