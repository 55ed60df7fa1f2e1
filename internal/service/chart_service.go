package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

const (
	chartAttendanceKey        = "charts:attendance:monthly"
	chartAttendanceKeyPattern = "charts:attendance*"
	chartFeesKey              = "charts:fees:monthly"
	chartFeesKeyPattern       = "charts:fees*"
)

type chartRepository interface {
	AttendanceMonthly(ctx context.Context) ([]models.AttendanceMonthly, error)
	FeesMonthly(ctx context.Context) ([]models.FeeMonthly, error)
}

// ChartService assembles the aggregated payloads behind the dashboard
// charts, caching them between mutations.
type ChartService struct {
	repo    chartRepository
	cache   *CacheService
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewChartService constructs the chart service.
func NewChartService(repo chartRepository, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *ChartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartService{repo: repo, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// AttendanceChart returns attendance percentages bucketed by month. The
// percentage is the share of rows marked present, rounded to two decimals.
func (s *ChartService) AttendanceChart(ctx context.Context) (*models.AttendanceChart, error) {
	var cached models.AttendanceChart
	if hit, err := s.cache.Get(ctx, chartAttendanceKey, &cached); err == nil && hit {
		return &cached, nil
	}

	start := time.Now()
	rows, err := s.repo.AttendanceMonthly(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("attendance_monthly", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate attendance")
	}

	chart := &models.AttendanceChart{Labels: make([]string, 0, len(rows)), Percent: make([]float64, 0, len(rows))}
	for _, row := range rows {
		chart.Labels = append(chart.Labels, row.Period)
		chart.Percent = append(chart.Percent, presentPercent(row.PresentCount, row.TotalCount))
	}

	if err := s.cache.Set(ctx, chartAttendanceKey, chart, s.ttl); err != nil {
		s.logger.Warn("attendance chart cache write failed", zap.Error(err))
	}
	return chart, nil
}

// FeesChart returns collected fee totals bucketed by paid month.
func (s *ChartService) FeesChart(ctx context.Context) (*models.FeesChart, error) {
	var cached models.FeesChart
	if hit, err := s.cache.Get(ctx, chartFeesKey, &cached); err == nil && hit {
		return &cached, nil
	}

	start := time.Now()
	rows, err := s.repo.FeesMonthly(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("fees_monthly", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate fees")
	}

	chart := &models.FeesChart{Labels: make([]string, 0, len(rows)), Data: make([]float64, 0, len(rows))}
	for _, row := range rows {
		chart.Labels = append(chart.Labels, row.Period)
		chart.Data = append(chart.Data, row.TotalAmount)
	}

	if err := s.cache.Set(ctx, chartFeesKey, chart, s.ttl); err != nil {
		s.logger.Warn("fees chart cache write failed", zap.Error(err))
	}
	return chart, nil
}

// presentPercent rounds present/total to two decimal places. Empty months
// never reach here: the aggregation only yields buckets with rows.
func presentPercent(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}
