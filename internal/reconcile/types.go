// Package reconcile implements the document reconciliation engine: it decides,
// per matrix requirement, whether a candidate's document set satisfies it,
// partially satisfies it, or is missing it, and produces an explainable verdict
// that every consumer (detail views, summary cards, exports) agrees on.
package reconcile

import (
	"github.com/google/uuid"
)

// ObligationLevel classifies how binding a matrix requirement is.
// It does not affect matching, only downstream weighting and display.
type ObligationLevel string

// Obligation level constants
const (
	ObligationEliminatory    ObligationLevel = "eliminatory"
	ObligationMandatory      ObligationLevel = "mandatory"
	ObligationRecommended    ObligationLevel = "recommended"
	ObligationClientRequired ObligationLevel = "client_required"
)

// Requirement is one row of a vacancy's requirement matrix.
type Requirement struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Code          *string         `json:"code,omitempty"`
	Abbreviation  *string         `json:"abbreviation,omitempty"`
	Obligation    ObligationLevel `json:"obligation"`
	Modality      *string         `json:"modality,omitempty"`
	RequiredHours *int            `json:"required_hours,omitempty"`
	ValidityRule  *string         `json:"validity_rule,omitempty"`
}

// CandidateDocument is a candidate's uploaded/extracted document in the
// canonical shape the engine operates on. Historical schema aliases are
// mapped into this shape by the adapter before the engine ever sees them.
type CandidateDocument struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Code          *string    `json:"code,omitempty"`
	CodeSubtype   *string    `json:"code_subtype,omitempty"`
	Abbreviation  *string    `json:"abbreviation,omitempty"`
	CatalogID     *uuid.UUID `json:"catalog_id,omitempty"`
	TotalHours    *int       `json:"total_hours,omitempty"`
	TheoryHours   *int       `json:"theory_hours,omitempty"`
	PracticeHours *int       `json:"practice_hours,omitempty"`
	Modality      *string    `json:"modality,omitempty"`
	ExpiryDate    *string    `json:"expiry_date,omitempty"`
	IsDeclaration bool       `json:"is_declaration"`
}

// MatchStrategy identifies which cascade strategy produced a match.
type MatchStrategy string

// Match strategy constants, in cascade priority order.
const (
	MatchIdentity     MatchStrategy = "identity"
	MatchCode         MatchStrategy = "code"
	MatchAbbreviation MatchStrategy = "abbreviation"
	MatchAISemantic   MatchStrategy = "ai_semantic"
	MatchSemanticName MatchStrategy = "semantic_name"
	MatchExactName    MatchStrategy = "exact_name"
	MatchNone         MatchStrategy = "none"
)

// codeMatchDetail records which sub-rule of the code strategy fired,
// so the observation text can name it.
type codeMatchDetail string

const (
	codeDetailHierarchy    codeMatchDetail = "hierarchy"
	codeDetailSubtypeEqual codeMatchDetail = "subtype_equal"
	codeDetailCodeEqual    codeMatchDetail = "code_equal"
	codeDetailNameContains codeMatchDetail = "name_contains"
)

// MatchResult is the outcome of the match cascade for one requirement.
type MatchResult struct {
	Strategy   MatchStrategy
	Confidence float64
	Document   *CandidateDocument

	codeDetail codeMatchDetail
}

// Found reports whether any strategy matched a document.
func (m MatchResult) Found() bool {
	return m.Strategy != MatchNone && m.Document != nil
}

// ValidityStatus classifies a document's expiry date.
type ValidityStatus string

// Validity status constants
const (
	ValidityValid         ValidityStatus = "valid"
	ValidityExpired       ValidityStatus = "expired"
	ValidityNotApplicable ValidityStatus = "not_applicable"
	ValidityMissing       ValidityStatus = "missing"
)

// Status is the final per-requirement verdict.
type Status string

// Verdict status constants
const (
	StatusSatisfied Status = "satisfied"
	StatusPartial   Status = "partial"
	StatusPending   Status = "pending"
)

// Verdict is the engine's output for one requirement. Pending implies no
// match was found; Partial implies a match failed a hard gate or had
// borderline confidence; Satisfied implies a match passed all hard gates.
type Verdict struct {
	RequirementID   uuid.UUID      `json:"requirement_id"`
	DocumentID      *uuid.UUID     `json:"document_id,omitempty"`
	Status          Status         `json:"status"`
	MatchType       MatchStrategy  `json:"match_type"`
	SimilarityScore float64        `json:"similarity_score"`
	ValidityStatus  ValidityStatus `json:"validity_status"`
	ValidityDate    *string        `json:"validity_date,omitempty"`
	Observations    string         `json:"observations"`
}

// Summary aggregates per-requirement verdicts for one candidate against one
// matrix. It is a recomputed view, never persisted as the source of truth.
type Summary struct {
	Total            int `json:"total"`
	Satisfied        int `json:"satisfied"`
	Partial          int `json:"partial"`
	Pending          int `json:"pending"`
	AdherencePercent int `json:"adherence_percent"`
}
