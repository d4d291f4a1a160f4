package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

// Vacancy represents a job opening with an associated requirement matrix
type Vacancy struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ClientName  *string   `json:"client_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VacancyCreateInput is used when creating a vacancy
type VacancyCreateInput struct {
	Title       string
	ClientName  string
	Description string
}

// CatalogDocument is an entry of the master document catalog
type CatalogDocument struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Code         *string   `json:"code,omitempty"`
	Abbreviation *string   `json:"abbreviation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CatalogDocumentCreateInput is used when creating a catalog entry
type CatalogDocumentCreateInput struct {
	Name         string
	Code         string
	Abbreviation string
}

// MatrixRequirement is one row of a vacancy's requirement matrix
type MatrixRequirement struct {
	ID            uuid.UUID  `json:"id"`
	VacancyID     uuid.UUID  `json:"vacancy_id"`
	CatalogID     *uuid.UUID `json:"catalog_id,omitempty"`
	Name          string     `json:"name"`
	Code          *string    `json:"code,omitempty"`
	Abbreviation  *string    `json:"abbreviation,omitempty"`
	Obligation    string     `json:"obligation"`
	Modality      *string    `json:"modality,omitempty"`
	RequiredHours *int       `json:"required_hours,omitempty"`
	ValidityRule  *string    `json:"validity_rule,omitempty"`
	Position      int        `json:"position"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MatrixRequirementInput is used when creating or updating a matrix row
type MatrixRequirementInput struct {
	CatalogID     *uuid.UUID
	Name          string
	Code          string
	Abbreviation  string
	Obligation    string
	Modality      string
	RequiredHours *int
	ValidityRule  string
	Position      int
}

// ToEngine converts the stored matrix row to the reconcile engine's shape.
// Documents link to catalog identities, so a row created from a catalog entry
// matches on that identity; ad-hoc rows match on their own id.
func (r *MatrixRequirement) ToEngine() reconcile.Requirement {
	id := r.ID
	if r.CatalogID != nil {
		id = *r.CatalogID
	}
	return reconcile.Requirement{
		ID:            id,
		Name:          r.Name,
		Code:          r.Code,
		Abbreviation:  r.Abbreviation,
		Obligation:    reconcile.ObligationLevel(r.Obligation),
		Modality:      r.Modality,
		RequiredHours: r.RequiredHours,
		ValidityRule:  r.ValidityRule,
	}
}

// EngineRequirements converts a matrix in display order.
func EngineRequirements(reqs []MatrixRequirement) []reconcile.Requirement {
	out := make([]reconcile.Requirement, 0, len(reqs))
	for i := range reqs {
		out = append(out, reqs[i].ToEngine())
	}
	return out
}
