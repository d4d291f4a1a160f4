package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

// CreateCandidateDocument stores a canonical document for a candidate. The
// document id comes from the adapter (upstream ids are preserved, missing
// ones are generated), so inserts are keyed rather than defaulted.
func (db *DB) CreateCandidateDocument(ctx context.Context, candidateID uuid.UUID, doc reconcile.CandidateDocument) (*CandidateDocument, error) {
	var d CandidateDocument
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidate_documents
		 (id, candidate_id, catalog_id, name, code, code_subtype, abbreviation,
		  total_hours, theory_hours, practice_hours, modality, expiry_date, is_declaration)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		   catalog_id = EXCLUDED.catalog_id, name = EXCLUDED.name, code = EXCLUDED.code,
		   code_subtype = EXCLUDED.code_subtype, abbreviation = EXCLUDED.abbreviation,
		   total_hours = EXCLUDED.total_hours, theory_hours = EXCLUDED.theory_hours,
		   practice_hours = EXCLUDED.practice_hours, modality = EXCLUDED.modality,
		   expiry_date = EXCLUDED.expiry_date, is_declaration = EXCLUDED.is_declaration,
		   updated_at = NOW()
		 RETURNING id, candidate_id, catalog_id, name, code, code_subtype, abbreviation,
		           total_hours, theory_hours, practice_hours, modality, expiry_date,
		           is_declaration, created_at, updated_at`,
		doc.ID, candidateID, doc.CatalogID, doc.Name, doc.Code, doc.CodeSubtype,
		doc.Abbreviation, doc.TotalHours, doc.TheoryHours, doc.PracticeHours,
		doc.Modality, doc.ExpiryDate, doc.IsDeclaration,
	).Scan(&d.ID, &d.CandidateID, &d.CatalogID, &d.Name, &d.Code, &d.CodeSubtype,
		&d.Abbreviation, &d.TotalHours, &d.TheoryHours, &d.PracticeHours, &d.Modality,
		&d.ExpiryDate, &d.IsDeclaration, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate document: %w", err)
	}
	return &d, nil
}

// GetCandidateDocumentByID retrieves a document, or nil when not found
func (db *DB) GetCandidateDocumentByID(ctx context.Context, id uuid.UUID) (*CandidateDocument, error) {
	var d CandidateDocument
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, catalog_id, name, code, code_subtype, abbreviation,
		        total_hours, theory_hours, practice_hours, modality, expiry_date,
		        is_declaration, created_at, updated_at
		 FROM candidate_documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.CandidateID, &d.CatalogID, &d.Name, &d.Code, &d.CodeSubtype,
		&d.Abbreviation, &d.TotalHours, &d.TheoryHours, &d.PracticeHours, &d.Modality,
		&d.ExpiryDate, &d.IsDeclaration, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate document: %w", err)
	}
	return &d, nil
}

// ListCandidateDocuments retrieves all documents for a candidate
func (db *DB) ListCandidateDocuments(ctx context.Context, candidateID uuid.UUID) ([]CandidateDocument, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, catalog_id, name, code, code_subtype, abbreviation,
		        total_hours, theory_hours, practice_hours, modality, expiry_date,
		        is_declaration, created_at, updated_at
		 FROM candidate_documents WHERE candidate_id = $1 ORDER BY created_at`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate documents: %w", err)
	}
	defer rows.Close()

	var docs []CandidateDocument
	for rows.Next() {
		var d CandidateDocument
		if err := rows.Scan(&d.ID, &d.CandidateID, &d.CatalogID, &d.Name, &d.Code, &d.CodeSubtype,
			&d.Abbreviation, &d.TotalHours, &d.TheoryHours, &d.PracticeHours, &d.Modality,
			&d.ExpiryDate, &d.IsDeclaration, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteCandidateDocument deletes a document
func (db *DB) DeleteCandidateDocument(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidate_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Resource: "candidate document", ID: id}
	}
	return nil
}
