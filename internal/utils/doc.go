// Package utils holds the CLI plumbing shared by commands: the Viper-backed
// ConfigurationLoader, the zap LoggerFactory, and FlushingWriter for report output.
package utils
