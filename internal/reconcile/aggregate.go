package reconcile

import "math"

// Aggregate reduces per-requirement verdicts into totals and an adherence
// percentage, with Partial counted at half weight:
//
//	percent = round(100 * (satisfied + 0.5*partial) / total)
//
// Every surface that shows a percentage (detail view, summary card, ranking,
// export) must use this function; re-deriving the formula elsewhere is the
// documented anti-pattern this engine exists to prevent.
func Aggregate(verdicts []Verdict) Summary {
	summary := Summary{Total: len(verdicts)}
	for _, v := range verdicts {
		switch v.Status {
		case StatusSatisfied:
			summary.Satisfied++
		case StatusPartial:
			summary.Partial++
		default:
			summary.Pending++
		}
	}
	if summary.Total > 0 {
		weighted := float64(summary.Satisfied) + 0.5*float64(summary.Partial)
		summary.AdherencePercent = int(math.Round(100 * weighted / float64(summary.Total)))
	}
	return summary
}
