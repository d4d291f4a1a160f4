// Package hierarchy decides whether a held regulatory code satisfies a
// required one under a domain supersession/equivalence table. The reconcile
// engine consumes it as an opaque, deterministic lookup.
package hierarchy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Validator reports whether a candidate's held code (or code subtype)
// satisfies a required regulatory code.
type Validator interface {
	Satisfies(requiredCode, heldCode string) bool
}

// Table is a Validator backed by a supersession map: required code ->
// held codes that satisfy it. A code always satisfies itself.
type Table struct {
	supersededBy map[string]map[string]bool
}

// defaultEntries covers the safety-standard and maritime-competency
// supersessions the back office relies on: supervisor-level and advanced
// trainings cover their base courses.
var defaultEntries = map[string][]string{
	"nr-10": {"nr-10-sep"},
	"nr-33": {"nr-33-supervisor"},
	"nr-35": {"nr-35-supervisor"},
	"sbv":   {"sav"},
	"cbsp":  {"caebs"},
	"huet":  {"caebs", "huet-r"},
}

// Default returns a Table preloaded with the built-in supersession entries.
func Default() *Table {
	return NewTable(defaultEntries)
}

// NewTable builds a Table from a required-code -> satisfying-codes map.
// Codes are normalized, so lookups are case- and accent-insensitive.
func NewTable(entries map[string][]string) *Table {
	t := &Table{supersededBy: make(map[string]map[string]bool, len(entries))}
	for required, held := range entries {
		set := make(map[string]bool, len(held))
		for _, h := range held {
			set[normalizeCode(h)] = true
		}
		t.supersededBy[normalizeCode(required)] = set
	}
	return t
}

// LoadFile reads a supersession table from a JSON file shaped as
// {"required-code": ["held-code", ...], ...}.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy table %s: %w", path, err)
	}
	var entries map[string][]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse hierarchy table %s: %w", path, err)
	}
	return NewTable(entries), nil
}

// Satisfies reports whether held satisfies required: either the codes are
// equal after normalization or the table lists held as superseding required.
func (t *Table) Satisfies(required, held string) bool {
	nr := normalizeCode(required)
	nh := normalizeCode(held)
	if nr == "" || nh == "" {
		return false
	}
	if nr == nh {
		return true
	}
	return t.supersededBy[nr][nh]
}

var codeStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeCode lower-cases, accent-strips and trims a code.
func normalizeCode(code string) string {
	stripped, _, err := transform.String(codeStripper, code)
	if err != nil {
		stripped = code
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}
