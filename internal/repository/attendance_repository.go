package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/school-erp/school-erp-api/internal/models"
)

// AttendanceRepository manages persistence for attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns all attendance records joined with student and class names,
// most recent first.
func (r *AttendanceRepository) List(ctx context.Context) ([]models.AttendanceDetail, error) {
	const query = `SELECT a.id, a.date, a.status, s.name AS student_name, c.name AS class_name
        FROM attendance a
        JOIN students s ON a.student_id = s.id
        JOIN classes c ON a.class_id = c.id
        ORDER BY a.date DESC, a.id DESC`
	var records []models.AttendanceDetail
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// FindByID fetches an attendance row by ID.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	const query = `SELECT id, student_id, class_id, date, status FROM attendance WHERE id = $1`
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	const query = `INSERT INTO attendance (student_id, class_id, date, status) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &record.ID, query, record.StudentID, record.ClassID, record.Date, record.Status); err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

// Update modifies an existing attendance record.
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	const query = `UPDATE attendance SET student_id = $1, class_id = $2, date = $3, status = $4 WHERE id = $5`
	if _, err := r.db.ExecContext(ctx, query, record.StudentID, record.ClassID, record.Date, record.Status, record.ID); err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// Delete removes an attendance record permanently.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}
