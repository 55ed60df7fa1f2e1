package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// ChartRepository runs the monthly aggregation queries backing the charts.
type ChartRepository struct {
	db *sqlx.DB
}

// NewChartRepository constructs a ChartRepository.
func NewChartRepository(db *sqlx.DB) *ChartRepository {
	return &ChartRepository{db: db}
}

// AttendanceMonthly buckets attendance rows by calendar month, counting
// present rows case-insensitively against the total.
func (r *ChartRepository) AttendanceMonthly(ctx context.Context) ([]models.AttendanceMonthly, error) {
	const query = `SELECT to_char(date, 'YYYY-MM') AS period,
        COUNT(*) FILTER (WHERE LOWER(status) = 'present') AS present_count,
        COUNT(*) AS total_count
        FROM attendance
        GROUP BY to_char(date, 'YYYY-MM')
        ORDER BY period`
	var rows []models.AttendanceMonthly
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("attendance monthly: %w", err)
	}
	return rows, nil
}

// FeesMonthly sums collected amounts per calendar month of the paid date.
// Unpaid records carry no paid date and are excluded.
func (r *ChartRepository) FeesMonthly(ctx context.Context) ([]models.FeeMonthly, error) {
	const query = `SELECT to_char(paid_date, 'YYYY-MM') AS period,
        COALESCE(SUM(amount), 0) AS total_amount
        FROM fees
        WHERE paid_date IS NOT NULL
        GROUP BY to_char(paid_date, 'YYYY-MM')
        ORDER BY period`
	var rows []models.FeeMonthly
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("fees monthly: %w", err)
	}
	return rows, nil
}
