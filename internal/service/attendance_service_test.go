package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

type mockAttendanceRepo struct {
	record  *models.Attendance
	created *models.Attendance
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]models.AttendanceDetail, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return m.record, nil
}

func (m *mockAttendanceRepo) Create(ctx context.Context, record *models.Attendance) error {
	record.ID = 1
	m.created = record
	return nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, record *models.Attendance) error {
	return nil
}

func (m *mockAttendanceRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestAttendanceServiceCreateParsesDate(t *testing.T) {
	repo := &mockAttendanceRepo{}
	svc := NewAttendanceService(repo, nil, nil, nil)

	record, err := svc.Create(context.Background(), AttendanceRequest{
		StudentID: 1, ClassID: 2, Date: "2026-08-20", Status: "Present",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestAttendanceServiceCreateRejectsBadDate(t *testing.T) {
	svc := NewAttendanceService(&mockAttendanceRepo{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), AttendanceRequest{
		StudentID: 1, ClassID: 2, Date: "20/08/2026", Status: "Present",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAttendanceServiceMutationInvalidatesChartCache(t *testing.T) {
	cacheRepo := &memoryCacheRepo{values: map[string][]byte{
		chartAttendanceKey: []byte(`{"labels":["2026-08"],"percent":[70]}`),
	}}
	cacheSvc := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewAttendanceService(&mockAttendanceRepo{}, cacheSvc, nil, nil)

	_, err := svc.Create(context.Background(), AttendanceRequest{
		StudentID: 1, ClassID: 2, Date: "2026-08-20", Status: "Present",
	})
	require.NoError(t, err)
	assert.Empty(t, cacheRepo.values)
}
