package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

const dashboardSummaryKey = "dashboard:summary"

type statsRepository interface {
	Counts(ctx context.Context) (*models.DashboardCounts, error)
	Ping(ctx context.Context) error
}

// DashboardService assembles the authenticated index payload.
type DashboardService struct {
	stats   statsRepository
	notices noticeRepository
	cache   *CacheService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(stats statsRepository, notices noticeRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{stats: stats, notices: notices, cache: cache, ttl: ttl, logger: logger}
}

// Summary returns the table counts and the newest notices. The payload is
// cached briefly; counts may lag a mutation by at most the TTL.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var cached models.DashboardSummary
	if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
		return &cached, nil
	}

	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard counts")
	}

	recent, err := s.notices.Recent(ctx, recentNoticeLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent notices")
	}

	summary := &models.DashboardSummary{Counts: *counts, RecentNotices: recent}
	if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return summary, nil
}

// PingDatabase verifies database connectivity for the health endpoints.
func (s *DashboardService) PingDatabase(ctx context.Context) error {
	return s.stats.Ping(ctx)
}
