package reconcile

import (
	"strings"
	"time"
)

// expiryDateLayouts are the date formats accepted for document expiry dates,
// tried in order.
var expiryDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// EvaluateValidity classifies a document's expiry date relative to now.
// Absent, empty, or the literal strings "null"/"undefined" yield
// ValidityNotApplicable; a present but unparsable value yields
// ValidityMissing. Validity is a function of wall-clock time, so callers must
// re-evaluate at verdict-compute time rather than caching the result.
func EvaluateValidity(expiry *string, now time.Time) ValidityStatus {
	if expiry == nil {
		return ValidityNotApplicable
	}
	raw := strings.TrimSpace(*expiry)
	if raw == "" || strings.EqualFold(raw, "null") || strings.EqualFold(raw, "undefined") {
		return ValidityNotApplicable
	}

	parsed, ok := parseExpiryDate(raw)
	if !ok {
		return ValidityMissing
	}
	if parsed.Before(now) {
		return ValidityExpired
	}
	return ValidityValid
}

// parseExpiryDate tries each accepted layout and returns the first parse that
// succeeds.
func parseExpiryDate(raw string) (time.Time, bool) {
	for _, layout := range expiryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
