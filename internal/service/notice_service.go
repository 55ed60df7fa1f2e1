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

const recentNoticeLimit = 5

type noticeRepository interface {
	List(ctx context.Context) ([]models.NoticeDetail, error)
	Recent(ctx context.Context, limit int) ([]models.RecentNotice, error)
	FindByID(ctx context.Context, id int64) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int64) error
}

// noticeTimestampLayouts accepts the datetime-local form value as well as
// a bare date.
var noticeTimestampLayouts = []string{"2006-01-02T15:04", dateLayout}

// NoticeRequest holds payload for creating or updating notices. A nil
// ClassID publishes the notice school-wide. CreatedAt is optional: empty
// means "now" on create and "keep the stored value" on update.
type NoticeRequest struct {
	ClassID   *int64 `json:"class_id"`
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	CreatedAt string `json:"created_at"`
}

func parseNoticeTimestamp(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range noticeTimestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "created_at must be formatted YYYY-MM-DD or YYYY-MM-DDTHH:MM")
}

// NoticeService handles notice use-cases.
type NoticeService struct {
	repo      noticeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the notice service.
func NewNoticeService(repo noticeRepository, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{repo: repo, validator: validate, logger: logger}
}

// List returns all notices with their optional class name.
func (s *NoticeService) List(ctx context.Context) ([]models.NoticeDetail, error) {
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	return notices, nil
}

// Recent returns the newest notices for the dashboard.
func (s *NoticeService) Recent(ctx context.Context) ([]models.RecentNotice, error) {
	notices, err := s.repo.Recent(ctx, recentNoticeLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recent notices")
	}
	return notices, nil
}

// Get returns a single notice.
func (s *NoticeService) Get(ctx context.Context, id int64) (*models.Notice, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Notice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notice")
	}
	return notice, nil
}

// Create publishes a new notice.
func (s *NoticeService) Create(ctx context.Context, req NoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}
	ts, err := parseNoticeTimestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}
	notice := &models.Notice{
		ClassID: req.ClassID,
		Title:   req.Title,
		Message: req.Message,
	}
	if ts != nil {
		notice.CreatedAt = *ts
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notice")
	}
	return notice, nil
}

// Update modifies an existing notice.
func (s *NoticeService) Update(ctx context.Context, id int64, req NoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}
	ts, err := parseNoticeTimestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}
	notice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	notice.ClassID = req.ClassID
	notice.Title = req.Title
	notice.Message = req.Message
	if ts != nil {
		notice.CreatedAt = *ts
	}
	if err := s.repo.Update(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update notice")
	}
	return notice, nil
}

// Delete removes a notice permanently.
func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete notice")
	}
	return nil
}
