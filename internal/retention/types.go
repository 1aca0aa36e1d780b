package retention

import (
	"errors"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultProtectedMarker identifies the unpublished, always-current Lambda version.
	DefaultProtectedMarker                    = "$LATEST"
	negativeRetentionDaysErrorMessageConstant = "retention days must not be negative"
	hoursPerDayConstant                       = 24
	protectedExclusionReasonLabelConstant     = "protected"
	aliasExclusionReasonLabelConstant         = "alias"
	outcomeNothingOlderLabelConstant          = "nothing_older_than_cutoff"
	outcomeNothingToPurgeLabelConstant        = "nothing_to_purge"
	outcomeEligibleLabelConstant              = "eligible"
	outcomeUnknownLabelConstant               = "unknown"
)

// ErrNegativeRetentionDays indicates a retention window below zero days.
var ErrNegativeRetentionDays = errors.New(negativeRetentionDaysErrorMessageConstant)

// VersionRecord describes a published function version as reported by the provider.
type VersionRecord struct {
	Identifier   string
	LastModified time.Time
}

// AliasRecord describes a named pointer to a single function version.
type AliasRecord struct {
	Name          string
	TargetVersion string
}

// Query carries the retention parameters for one invocation.
// DefaultProtectedMarker is protected whether or not ProtectedMarkers lists it.
type Query struct {
	Cutoff           time.Time
	ProtectedMarkers []string
}

// NewQuery derives the cutoff as now minus the requested number of days.
// Additional markers extend DefaultProtectedMarker; blank and repeated entries are dropped.
func NewQuery(now time.Time, retentionDays int, additionalMarkers ...string) (Query, error) {
	if retentionDays < 0 {
		return Query{}, ErrNegativeRetentionDays
	}

	protectedMarkers := []string{DefaultProtectedMarker}
	for _, marker := range additionalMarkers {
		trimmedMarker := strings.TrimSpace(marker)
		if len(trimmedMarker) == 0 || slices.Contains(protectedMarkers, trimmedMarker) {
			continue
		}
		protectedMarkers = append(protectedMarkers, trimmedMarker)
	}

	cutoff := now.UTC().Add(-time.Duration(retentionDays) * hoursPerDayConstant * time.Hour)

	return Query{Cutoff: cutoff, ProtectedMarkers: protectedMarkers}, nil
}

// IsProtected reports whether identifier may never be purged.
func (query Query) IsProtected(identifier string) bool {
	return identifier == DefaultProtectedMarker || slices.Contains(query.ProtectedMarkers, identifier)
}

// Outcome classifies the result of a retention evaluation.
type Outcome int

// Supported outcomes.
const (
	OutcomeNothingOlderThanCutoff Outcome = iota
	OutcomeNothingToPurge
	OutcomeEligible
)

// String returns a stable label suitable for structured logs.
func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeNothingOlderThanCutoff:
		return outcomeNothingOlderLabelConstant
	case OutcomeNothingToPurge:
		return outcomeNothingToPurgeLabelConstant
	case OutcomeEligible:
		return outcomeEligibleLabelConstant
	default:
		return outcomeUnknownLabelConstant
	}
}

// ExclusionReason explains why an aged version is kept.
type ExclusionReason string

// Exclusion reasons.
const (
	ExclusionReasonProtected ExclusionReason = protectedExclusionReasonLabelConstant
	ExclusionReasonAlias     ExclusionReason = aliasExclusionReasonLabelConstant
)

// Exclusion records an aged version that survives the purge.
type Exclusion struct {
	Identifier string
	Reason     ExclusionReason
	AliasName  string
}

// Plan is the result of evaluating versions against a Query.
type Plan struct {
	Outcome    Outcome
	Candidates []VersionRecord
	Exclusions []Exclusion
	PurgeList  []string
}
