package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// StatsRepository answers the per-table counts shown on the dashboard.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns the row totals of the dashboard tables.
func (r *StatsRepository) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	var counts models.DashboardCounts
	queries := []struct {
		table string
		dest  *int
	}{
		{"students", &counts.Students},
		{"teachers", &counts.Teachers},
		{"classes", &counts.Classes},
		{"attendance", &counts.Attendance},
		{"notices", &counts.Notices},
	}
	for _, q := range queries {
		if err := r.db.GetContext(ctx, q.dest, fmt.Sprintf("SELECT COUNT(*) FROM %s", q.table)); err != nil {
			return nil, fmt.Errorf("count %s: %w", q.table, err)
		}
	}
	return &counts, nil
}

// Ping verifies database connectivity with a trivial query.
func (r *StatsRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
