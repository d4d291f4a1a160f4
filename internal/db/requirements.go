package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateMatrixRequirement inserts one requirement row for a vacancy
func (db *DB) CreateMatrixRequirement(ctx context.Context, vacancyID uuid.UUID, input MatrixRequirementInput) (*MatrixRequirement, error) {
	var r MatrixRequirement
	err := db.pool.QueryRow(ctx,
		`INSERT INTO matrix_requirements
		 (vacancy_id, catalog_id, name, code, abbreviation, obligation, modality, required_hours, validity_rule, position)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8, NULLIF($9, ''), $10)
		 RETURNING id, vacancy_id, catalog_id, name, code, abbreviation, obligation, modality,
		           required_hours, validity_rule, position, created_at, updated_at`,
		vacancyID, input.CatalogID, input.Name, input.Code, input.Abbreviation,
		input.Obligation, input.Modality, input.RequiredHours, input.ValidityRule, input.Position,
	).Scan(&r.ID, &r.VacancyID, &r.CatalogID, &r.Name, &r.Code, &r.Abbreviation, &r.Obligation,
		&r.Modality, &r.RequiredHours, &r.ValidityRule, &r.Position, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix requirement: %w", err)
	}
	return &r, nil
}

// GetMatrixRequirementByID retrieves a requirement row, or nil when not found
func (db *DB) GetMatrixRequirementByID(ctx context.Context, id uuid.UUID) (*MatrixRequirement, error) {
	var r MatrixRequirement
	err := db.pool.QueryRow(ctx,
		`SELECT id, vacancy_id, catalog_id, name, code, abbreviation, obligation, modality,
		        required_hours, validity_rule, position, created_at, updated_at
		 FROM matrix_requirements WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.VacancyID, &r.CatalogID, &r.Name, &r.Code, &r.Abbreviation, &r.Obligation,
		&r.Modality, &r.RequiredHours, &r.ValidityRule, &r.Position, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get matrix requirement: %w", err)
	}
	return &r, nil
}

// ListMatrixRequirements retrieves a vacancy's matrix in display order
func (db *DB) ListMatrixRequirements(ctx context.Context, vacancyID uuid.UUID) ([]MatrixRequirement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, vacancy_id, catalog_id, name, code, abbreviation, obligation, modality,
		        required_hours, validity_rule, position, created_at, updated_at
		 FROM matrix_requirements WHERE vacancy_id = $1 ORDER BY position, created_at`,
		vacancyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matrix requirements: %w", err)
	}
	defer rows.Close()

	var reqs []MatrixRequirement
	for rows.Next() {
		var r MatrixRequirement
		if err := rows.Scan(&r.ID, &r.VacancyID, &r.CatalogID, &r.Name, &r.Code, &r.Abbreviation,
			&r.Obligation, &r.Modality, &r.RequiredHours, &r.ValidityRule, &r.Position,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan matrix requirement: %w", err)
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// UpdateMatrixRequirement updates a requirement row
func (db *DB) UpdateMatrixRequirement(ctx context.Context, id uuid.UUID, input MatrixRequirementInput) (*MatrixRequirement, error) {
	var r MatrixRequirement
	err := db.pool.QueryRow(ctx,
		`UPDATE matrix_requirements
		 SET catalog_id = $1, name = $2, code = NULLIF($3, ''), abbreviation = NULLIF($4, ''),
		     obligation = $5, modality = NULLIF($6, ''), required_hours = $7,
		     validity_rule = NULLIF($8, ''), position = $9, updated_at = NOW()
		 WHERE id = $10
		 RETURNING id, vacancy_id, catalog_id, name, code, abbreviation, obligation, modality,
		           required_hours, validity_rule, position, created_at, updated_at`,
		input.CatalogID, input.Name, input.Code, input.Abbreviation, input.Obligation,
		input.Modality, input.RequiredHours, input.ValidityRule, input.Position, id,
	).Scan(&r.ID, &r.VacancyID, &r.CatalogID, &r.Name, &r.Code, &r.Abbreviation, &r.Obligation,
		&r.Modality, &r.RequiredHours, &r.ValidityRule, &r.Position, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update matrix requirement: %w", err)
	}
	return &r, nil
}

// DeleteMatrixRequirement deletes a requirement row
func (db *DB) DeleteMatrixRequirement(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM matrix_requirements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete matrix requirement: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Resource: "matrix requirement", ID: id}
	}
	return nil
}
