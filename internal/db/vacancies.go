package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateVacancy inserts a vacancy and returns the stored record
func (db *DB) CreateVacancy(ctx context.Context, input VacancyCreateInput) (*Vacancy, error) {
	var v Vacancy
	err := db.pool.QueryRow(ctx,
		`INSERT INTO vacancies (title, client_name, description)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id, title, client_name, description, created_at, updated_at`,
		input.Title, input.ClientName, input.Description,
	).Scan(&v.ID, &v.Title, &v.ClientName, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create vacancy: %w", err)
	}
	return &v, nil
}

// GetVacancyByID retrieves a vacancy, or nil when not found
func (db *DB) GetVacancyByID(ctx context.Context, id uuid.UUID) (*Vacancy, error) {
	var v Vacancy
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, client_name, description, created_at, updated_at
		 FROM vacancies WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Title, &v.ClientName, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vacancy: %w", err)
	}
	return &v, nil
}

// ListVacancies retrieves vacancies with pagination, newest first
func (db *DB) ListVacancies(ctx context.Context, limit, offset int) ([]Vacancy, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, client_name, description, created_at, updated_at
		 FROM vacancies ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []Vacancy
	for rows.Next() {
		var v Vacancy
		if err := rows.Scan(&v.ID, &v.Title, &v.ClientName, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

// UpdateVacancy updates a vacancy's fields
func (db *DB) UpdateVacancy(ctx context.Context, id uuid.UUID, input VacancyCreateInput) (*Vacancy, error) {
	var v Vacancy
	err := db.pool.QueryRow(ctx,
		`UPDATE vacancies
		 SET title = $1, client_name = NULLIF($2, ''), description = NULLIF($3, ''), updated_at = NOW()
		 WHERE id = $4
		 RETURNING id, title, client_name, description, created_at, updated_at`,
		input.Title, input.ClientName, input.Description, id,
	).Scan(&v.ID, &v.Title, &v.ClientName, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update vacancy: %w", err)
	}
	return &v, nil
}

// DeleteVacancy deletes a vacancy and its requirement matrix (via cascade)
func (db *DB) DeleteVacancy(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacancy: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Resource: "vacancy", ID: id}
	}
	return nil
}
