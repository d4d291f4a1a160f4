package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCatalogDocument inserts a catalog entry and returns the stored record
func (db *DB) CreateCatalogDocument(ctx context.Context, input CatalogDocumentCreateInput) (*CatalogDocument, error) {
	var d CatalogDocument
	err := db.pool.QueryRow(ctx,
		`INSERT INTO catalog_documents (name, code, abbreviation)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id, name, code, abbreviation, created_at, updated_at`,
		input.Name, input.Code, input.Abbreviation,
	).Scan(&d.ID, &d.Name, &d.Code, &d.Abbreviation, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog document: %w", err)
	}
	return &d, nil
}

// GetCatalogDocumentByID retrieves a catalog entry, or nil when not found
func (db *DB) GetCatalogDocumentByID(ctx context.Context, id uuid.UUID) (*CatalogDocument, error) {
	var d CatalogDocument
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, code, abbreviation, created_at, updated_at
		 FROM catalog_documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Code, &d.Abbreviation, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog document: %w", err)
	}
	return &d, nil
}

// ListCatalogDocuments retrieves catalog entries ordered by name
func (db *DB) ListCatalogDocuments(ctx context.Context, limit, offset int) ([]CatalogDocument, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, code, abbreviation, created_at, updated_at
		 FROM catalog_documents ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog documents: %w", err)
	}
	defer rows.Close()

	var docs []CatalogDocument
	for rows.Next() {
		var d CatalogDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.Abbreviation, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan catalog document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteCatalogDocument deletes a catalog entry. Matrix rows and candidate
// documents that referenced it keep their denormalized fields.
func (db *DB) DeleteCatalogDocument(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM catalog_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete catalog document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Resource: "catalog document", ID: id}
	}
	return nil
}
