package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// FeeRepository manages persistence for fee records.
type FeeRepository struct {
	db *sqlx.DB
}

// NewFeeRepository constructs a FeeRepository.
func NewFeeRepository(db *sqlx.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// List returns all fee records, newest first.
func (r *FeeRepository) List(ctx context.Context) ([]models.Fee, error) {
	const query = `SELECT id, student_name, amount, paid_date, status FROM fees ORDER BY id DESC`
	var fees []models.Fee
	if err := r.db.SelectContext(ctx, &fees, query); err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return fees, nil
}

// FindByID fetches a fee record by ID.
func (r *FeeRepository) FindByID(ctx context.Context, id int64) (*models.Fee, error) {
	const query = `SELECT id, student_name, amount, paid_date, status FROM fees WHERE id = $1`
	var fee models.Fee
	if err := r.db.GetContext(ctx, &fee, query, id); err != nil {
		return nil, err
	}
	return &fee, nil
}

// Create inserts a new fee record.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	const query = `INSERT INTO fees (student_name, amount, paid_date, status) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &fee.ID, query, fee.StudentName, fee.Amount, fee.PaidDate, fee.Status); err != nil {
		return fmt.Errorf("create fee: %w", err)
	}
	return nil
}

// Update modifies an existing fee record.
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	const query = `UPDATE fees SET student_name = $1, amount = $2, paid_date = $3, status = $4 WHERE id = $5`
	if _, err := r.db.ExecContext(ctx, query, fee.StudentName, fee.Amount, fee.PaidDate, fee.Status, fee.ID); err != nil {
		return fmt.Errorf("update fee: %w", err)
	}
	return nil
}

// Delete removes a fee record permanently.
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete fee: %w", err)
	}
	return nil
}
