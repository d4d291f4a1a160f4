package reconcile

import (
	"fmt"
	"math"
	"strings"
)

// Fixed observation phrases for terminal verdicts.
const (
	obsNotFound           = "No matching document found"
	obsInvalidRequirement = "Invalid matrix requirement"
	obsDeclaration        = "Declaration"
)

// observationSeparator joins the ordered observation parts.
const observationSeparator = " | "

// strategyPhrase names the strategy that matched, for display.
func strategyPhrase(match MatchResult) string {
	switch match.Strategy {
	case MatchIdentity:
		return "Exact catalog ID match"
	case MatchCode:
		switch match.codeDetail {
		case codeDetailHierarchy:
			return "Regulatory-hierarchy code match"
		case codeDetailNameContains:
			return "Code found in document name"
		default:
			return "Code match"
		}
	case MatchAbbreviation:
		return "Abbreviation match"
	case MatchSemanticName:
		return "Name similarity with differences"
	case MatchAISemantic:
		return "AI-assisted name match"
	case MatchExactName:
		return "Exact name match"
	default:
		return obsNotFound
	}
}

// composeObservation renders the ordered, pipe-delimited explanation from the
// same facts the status decider consumed. Parts are only emitted when their
// fact is present; a missing match collapses to the single not-found phrase.
func composeObservation(match MatchResult, gates gateReport) string {
	if !match.Found() {
		return obsNotFound
	}

	var parts []string

	if match.Strategy == MatchIdentity && match.Document.IsDeclaration {
		parts = append(parts, obsDeclaration)
	}

	parts = append(parts, strategyPhrase(match))

	if !gates.HoursSufficient {
		parts = append(parts, fmt.Sprintf("Insufficient hours: %dh of %dh required", gates.ActualHours, gates.RequiredHours))
	}

	if !gates.ModalityCompatible && gates.ModalityNote != "" {
		parts = append(parts, gates.ModalityNote)
	}

	switch gates.Validity {
	case ValidityExpired:
		parts = append(parts, "Document expired")
	case ValidityValid:
		parts = append(parts, "Document valid")
	}

	if match.Confidence < 1.0 {
		parts = append(parts, fmt.Sprintf("Similarity: %d%%", int(math.Round(match.Confidence*100))))
	}

	return strings.Join(parts, observationSeparator)
}
