package reconcile

// decideStatus maps a match and its gate report to a verdict through a fixed
// decision table, evaluated top to bottom, first matching rule wins:
//
//  1. no match                                  -> Pending
//  2. validity gate expired                     -> Partial
//  3. hours gate failed                         -> Partial
//  4. identity/code/abbreviation/exact strategy -> Satisfied
//  5. fuzzy name match, high confidence         -> Satisfied
//  6. fuzzy name match, borderline confidence   -> Partial
//  7. anything else                             -> Partial
//
// High-confidence structural matches are trusted outright once the hard gates
// pass; fuzzy name similarity alone is not proof of document identity, so
// borderline scores stay Partial even with clean gates.
func decideStatus(cfg Config, match MatchResult, gates gateReport) Status {
	switch {
	case !match.Found():
		return StatusPending
	case gates.Validity == ValidityExpired:
		return StatusPartial
	case !gates.HoursSufficient:
		return StatusPartial
	}

	switch match.Strategy {
	case MatchIdentity, MatchCode, MatchAbbreviation, MatchExactName:
		return StatusSatisfied
	case MatchSemanticName, MatchAISemantic:
		if match.Confidence >= cfg.SemanticSatisfied {
			return StatusSatisfied
		}
		return StatusPartial
	default:
		return StatusPartial
	}
}
