package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

// Candidate represents a person being screened against vacancies
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CandidateCreateInput is used when creating a candidate
type CandidateCreateInput struct {
	Name  string
	Email string
	Phone string
}

// CandidateDocument represents a document uploaded for a candidate, stored in
// the canonical shape (legacy payload aliases are collapsed by the
// reconcile adapter before reaching this layer)
type CandidateDocument struct {
	ID            uuid.UUID  `json:"id"`
	CandidateID   uuid.UUID  `json:"candidate_id"`
	CatalogID     *uuid.UUID `json:"catalog_id,omitempty"`
	Name          string     `json:"name"`
	Code          *string    `json:"code,omitempty"`
	CodeSubtype   *string    `json:"code_subtype,omitempty"`
	Abbreviation  *string    `json:"abbreviation,omitempty"`
	TotalHours    *int       `json:"total_hours,omitempty"`
	TheoryHours   *int       `json:"theory_hours,omitempty"`
	PracticeHours *int       `json:"practice_hours,omitempty"`
	Modality      *string    `json:"modality,omitempty"`
	ExpiryDate    *string    `json:"expiry_date,omitempty"`
	IsDeclaration bool       `json:"is_declaration"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToEngine converts the stored document to the reconcile engine's shape.
func (d *CandidateDocument) ToEngine() reconcile.CandidateDocument {
	return reconcile.CandidateDocument{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		CodeSubtype:   d.CodeSubtype,
		Abbreviation:  d.Abbreviation,
		CatalogID:     d.CatalogID,
		TotalHours:    d.TotalHours,
		TheoryHours:   d.TheoryHours,
		PracticeHours: d.PracticeHours,
		Modality:      d.Modality,
		ExpiryDate:    d.ExpiryDate,
		IsDeclaration: d.IsDeclaration,
	}
}

// EngineDocuments converts a stored document list for one reconciliation run.
func EngineDocuments(docs []CandidateDocument) []reconcile.CandidateDocument {
	out := make([]reconcile.CandidateDocument, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].ToEngine())
	}
	return out
}
