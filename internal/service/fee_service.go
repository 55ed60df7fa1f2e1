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

type feeRepository interface {
	List(ctx context.Context) ([]models.Fee, error)
	FindByID(ctx context.Context, id int64) (*models.Fee, error)
	Create(ctx context.Context, fee *models.Fee) error
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
}

// FeeRequest holds payload for creating or updating fee records. PaidDate
// is the form's YYYY-MM-DD string and stays empty for unpaid records.
type FeeRequest struct {
	StudentName string  `json:"student_name" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	PaidDate    string  `json:"paid_date"`
	Status      string  `json:"status" validate:"required"`
}

// FeeService handles fee use-cases and keeps the fees chart cache coherent
// across mutations.
type FeeService struct {
	repo      feeRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeeService constructs the fee service.
func NewFeeService(repo feeRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *FeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all fee records.
func (s *FeeService) List(ctx context.Context) ([]models.Fee, error) {
	fees, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}
	return fees, nil
}

// Get returns a single fee record.
func (s *FeeService) Get(ctx context.Context, id int64) (*models.Fee, error) {
	fee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Fee record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee record")
	}
	return fee, nil
}

// Create registers a new fee record.
func (s *FeeService) Create(ctx context.Context, req FeeRequest) (*models.Fee, error) {
	fee, err := s.buildFee(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, fee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fee record")
	}
	s.invalidateCharts(ctx)
	return fee, nil
}

// Update modifies an existing fee record.
func (s *FeeService) Update(ctx context.Context, id int64, req FeeRequest) (*models.Fee, error) {
	fee, err := s.buildFee(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	fee.ID = id
	if err := s.repo.Update(ctx, fee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update fee record")
	}
	s.invalidateCharts(ctx)
	return fee, nil
}

// Delete removes a fee record permanently.
func (s *FeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete fee record")
	}
	s.invalidateCharts(ctx)
	return nil
}

func (s *FeeService) buildFee(req FeeRequest) (*models.Fee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fee payload")
	}
	fee := &models.Fee{
		StudentName: req.StudentName,
		Amount:      req.Amount,
		Status:      req.Status,
	}
	if req.PaidDate != "" {
		paid, err := time.Parse(dateLayout, req.PaidDate)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "paid_date must be formatted YYYY-MM-DD")
		}
		fee.PaidDate = &paid
	}
	return fee, nil
}

func (s *FeeService) invalidateCharts(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, chartFeesKeyPattern); err != nil {
		s.logger.Warn("fees chart cache invalidation failed", zap.Error(err))
	}
}
