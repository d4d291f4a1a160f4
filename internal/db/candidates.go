package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCandidate inserts a candidate and returns the stored record
func (db *DB) CreateCandidate(ctx context.Context, input CandidateCreateInput) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id, name, email, phone, created_at, updated_at`,
		input.Name, input.Email, input.Phone,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &c, nil
}

// GetCandidateByID retrieves a candidate, or nil when not found
func (db *DB) GetCandidateByID(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// ListCandidates retrieves candidates with pagination, newest first
func (db *DB) ListCandidates(ctx context.Context, limit, offset int) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, phone, created_at, updated_at
		 FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// UpdateCandidate updates a candidate's profile fields
func (db *DB) UpdateCandidate(ctx context.Context, id uuid.UUID, input CandidateCreateInput) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET name = $1, email = NULLIF($2, ''), phone = NULLIF($3, ''), updated_at = NOW()
		 WHERE id = $4
		 RETURNING id, name, email, phone, created_at, updated_at`,
		input.Name, input.Email, input.Phone, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return &c, nil
}

// DeleteCandidate deletes a candidate and their documents (via cascade)
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Resource: "candidate", ID: id}
	}
	return nil
}
