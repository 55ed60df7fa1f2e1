package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type attendanceRepository interface {
	List(ctx context.Context) ([]models.AttendanceDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id int64) error
}

// AttendanceRequest holds payload for creating or updating attendance
// records. Date arrives as the form's YYYY-MM-DD string.
type AttendanceRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	ClassID   int64  `json:"class_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// AttendanceService handles attendance use-cases and keeps the attendance
// chart cache coherent across mutations.
type AttendanceService struct {
	repo      attendanceRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo attendanceRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all attendance records with student and class names.
func (s *AttendanceService) List(ctx context.Context) ([]models.AttendanceDetail, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// Get returns a single attendance record.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*models.Attendance, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Attendance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance record")
	}
	return record, nil
}

// Create registers a new attendance record.
func (s *AttendanceService) Create(ctx context.Context, req AttendanceRequest) (*models.Attendance, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create attendance record")
	}
	s.invalidateCharts(ctx)
	return record, nil
}

// Update modifies an existing attendance record.
func (s *AttendanceService) Update(ctx context.Context, id int64, req AttendanceRequest) (*models.Attendance, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	record.ID = id
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update attendance record")
	}
	s.invalidateCharts(ctx)
	return record, nil
}

// Delete removes an attendance record permanently.
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete attendance record")
	}
	s.invalidateCharts(ctx)
	return nil
}

func (s *AttendanceService) buildRecord(req AttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be formatted YYYY-MM-DD")
	}
	return &models.Attendance{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      date,
		Status:    req.Status,
	}, nil
}

func (s *AttendanceService) invalidateCharts(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, chartAttendanceKeyPattern); err != nil {
		s.logger.Warn("attendance chart cache invalidation failed", zap.Error(err))
	}
}
