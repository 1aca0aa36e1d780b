// Package cli constructs the lambda-version-cleaner command-line interface.
// It loads layered configuration (embedded defaults, config file, environment),
// creates the zap logger, and runs the cleaner command as the root command.
package cli
