package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks, recomposes to NFC.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a free-text identifier for comparison: lower-cased,
// accent-stripped and trimmed. Empty input yields the empty string; the
// function is total and never fails.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw string.
		stripped = s
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// normalizePtr normalizes an optional string, treating nil as empty.
func normalizePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Normalize(*s)
}
