// Package lambdaversions provides a typed client for AWS Lambda version maintenance.
//
// It wraps the aws-sdk-go-v2 Lambda paginators to list aliases and published
// versions, converts provider timestamps into time.Time values, and deletes
// individual qualified versions. The cleaner command consumes it through a
// narrow interface so tests can substitute stubs.
package lambdaversions
