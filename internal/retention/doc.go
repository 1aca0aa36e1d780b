// Package retention decides which function versions are safe to delete.
//
// It defines the VersionRecord, AliasRecord and Query inputs and the Filter
// routine that reduces them to an ordered purge list while recording why aged
// versions were kept.
package retention
