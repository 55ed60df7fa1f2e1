package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// NoticeRepository manages persistence for notices.
type NoticeRepository struct {
	db *sqlx.DB
}

// NewNoticeRepository constructs a NoticeRepository.
func NewNoticeRepository(db *sqlx.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// List returns all notices with the optional class name, newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]models.NoticeDetail, error) {
	const query = `SELECT n.id, n.title, n.message, n.created_at, c.name AS class_name
        FROM notices n
        LEFT JOIN classes c ON n.class_id = c.id
        ORDER BY n.created_at DESC, n.id DESC`
	var notices []models.NoticeDetail
	if err := r.db.SelectContext(ctx, &notices, query); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

// Recent returns the newest notices up to limit, for the dashboard.
func (r *NoticeRepository) Recent(ctx context.Context, limit int) ([]models.RecentNotice, error) {
	const query = `SELECT id, title, created_at FROM notices ORDER BY created_at DESC, id DESC LIMIT $1`
	var notices []models.RecentNotice
	if err := r.db.SelectContext(ctx, &notices, query, limit); err != nil {
		return nil, fmt.Errorf("recent notices: %w", err)
	}
	return notices, nil
}

// FindByID fetches a notice by ID.
func (r *NoticeRepository) FindByID(ctx context.Context, id int64) (*models.Notice, error) {
	const query = `SELECT id, class_id, title, message, created_at FROM notices WHERE id = $1`
	var notice models.Notice
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create inserts a new notice. A zero CreatedAt falls back to the database
// clock.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	const query = `INSERT INTO notices (class_id, title, message, created_at)
        VALUES ($1, $2, $3, COALESCE($4, now())) RETURNING id, created_at`
	var ts *time.Time
	if !notice.CreatedAt.IsZero() {
		ts = &notice.CreatedAt
	}
	if err := r.db.GetContext(ctx, notice, query, notice.ClassID, notice.Title, notice.Message, ts); err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

// Update modifies an existing notice, timestamp included.
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	const query = `UPDATE notices SET class_id = $1, title = $2, message = $3, created_at = $4 WHERE id = $5`
	if _, err := r.db.ExecContext(ctx, query, notice.ClassID, notice.Title, notice.Message, notice.CreatedAt, notice.ID); err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	return nil
}

// Delete removes a notice permanently.
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	return nil
}
