package retention

// Filter computes which versions may be deleted.
//
// A version is purged when it was last modified at or before the cutoff, is not
// protected ($LATEST always is), and no alias targets it. Discovery order is preserved.
func Filter(versions []VersionRecord, aliases []AliasRecord, query Query) Plan {
	candidates := selectAgedVersions(versions, query)
	if len(candidates) == 0 {
		return Plan{Outcome: OutcomeNothingOlderThanCutoff}
	}

	plan := Plan{Candidates: candidates}
	for _, candidate := range candidates {
		exclusion, excluded := findExclusion(candidate, aliases, query)
		if excluded {
			plan.Exclusions = append(plan.Exclusions, exclusion)
			continue
		}
		plan.PurgeList = append(plan.PurgeList, candidate.Identifier)
	}

	if len(plan.PurgeList) == 0 {
		plan.Outcome = OutcomeNothingToPurge
		return plan
	}

	plan.Outcome = OutcomeEligible
	return plan
}

func selectAgedVersions(versions []VersionRecord, query Query) []VersionRecord {
	var agedVersions []VersionRecord
	for _, version := range versions {
		if version.LastModified.After(query.Cutoff) {
			continue
		}
		agedVersions = append(agedVersions, version)
	}
	return agedVersions
}

// findExclusion stops at the first reason found.
func findExclusion(candidate VersionRecord, aliases []AliasRecord, query Query) (Exclusion, bool) {
	if query.IsProtected(candidate.Identifier) {
		return Exclusion{Identifier: candidate.Identifier, Reason: ExclusionReasonProtected}, true
	}

	for _, alias := range aliases {
		if alias.TargetVersion == candidate.Identifier {
			return Exclusion{Identifier: candidate.Identifier, Reason: ExclusionReasonAlias, AliasName: alias.Name}, true
		}
	}

	return Exclusion{}, false
}
