// Package cleaner lists and purges aged AWS Lambda function versions from the CLI.
//
// It provides CommandBuilder for wiring the Cobra command, Service for
// running listing, retention filtering, confirmation and deletion in one pass,
// and DeletionExecutor which records a typed result for every version it
// attempts to remove.
package cleaner
