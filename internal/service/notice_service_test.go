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

type mockNoticeRepo struct {
	notice  *models.Notice
	created *models.Notice
	updated *models.Notice
}

func (m *mockNoticeRepo) List(context.Context) ([]models.NoticeDetail, error) { return nil, nil }
func (m *mockNoticeRepo) Recent(context.Context, int) ([]models.RecentNotice, error) {
	return nil, nil
}

func (m *mockNoticeRepo) FindByID(context.Context, int64) (*models.Notice, error) {
	return m.notice, nil
}

func (m *mockNoticeRepo) Create(_ context.Context, notice *models.Notice) error {
	notice.ID = 1
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now().UTC()
	}
	m.created = notice
	return nil
}

func (m *mockNoticeRepo) Update(_ context.Context, notice *models.Notice) error {
	m.updated = notice
	return nil
}

func (m *mockNoticeRepo) Delete(context.Context, int64) error { return nil }

func TestNoticeCreateAcceptsTimestamp(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, nil, nil)

	notice, err := svc.Create(context.Background(), NoticeRequest{
		Title:     "Libur sekolah",
		Message:   "Sekolah libur hari Jumat.",
		CreatedAt: "2026-08-20T09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC), notice.CreatedAt)
}

func TestNoticeCreateDefaultsTimestamp(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, nil, nil)

	notice, err := svc.Create(context.Background(), NoticeRequest{
		Title:   "Libur sekolah",
		Message: "Sekolah libur hari Jumat.",
	})
	require.NoError(t, err)
	assert.False(t, notice.CreatedAt.IsZero())
}

func TestNoticeUpdateTimestampHandling(t *testing.T) {
	stored := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	t.Run("empty keeps stored value", func(t *testing.T) {
		repo := &mockNoticeRepo{notice: &models.Notice{ID: 4, Title: "Lama", Message: "x", CreatedAt: stored}}
		svc := NewNoticeService(repo, nil, nil)

		notice, err := svc.Update(context.Background(), 4, NoticeRequest{Title: "Baru", Message: "y"})
		require.NoError(t, err)
		assert.Equal(t, stored, notice.CreatedAt)
	})

	t.Run("explicit value overrides", func(t *testing.T) {
		repo := &mockNoticeRepo{notice: &models.Notice{ID: 4, Title: "Lama", Message: "x", CreatedAt: stored}}
		svc := NewNoticeService(repo, nil, nil)

		notice, err := svc.Update(context.Background(), 4, NoticeRequest{Title: "Baru", Message: "y", CreatedAt: "2026-08-25"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), notice.CreatedAt)
		require.NotNil(t, repo.updated)
		assert.Equal(t, notice.CreatedAt, repo.updated.CreatedAt)
	})
}

func TestNoticeRejectsMalformedTimestamp(t *testing.T) {
	svc := NewNoticeService(&mockNoticeRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), NoticeRequest{
		Title:     "Libur",
		Message:   "x",
		CreatedAt: "20/08/2026",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
