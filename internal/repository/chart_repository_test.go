package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRepositoryAttendanceMonthly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChartRepository(db)

	rows := sqlmock.NewRows([]string{"period", "present_count", "total_count"}).
		AddRow("2026-07", 18, 20).
		AddRow("2026-08", 7, 10)
	mock.ExpectQuery(`FROM attendance`).WillReturnRows(rows)

	buckets, err := repo.AttendanceMonthly(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-07", buckets[0].Period)
	assert.Equal(t, 18, buckets[0].PresentCount)
	assert.Equal(t, 10, buckets[1].TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChartRepositoryFeesMonthlySkipsUnpaid(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChartRepository(db)

	rows := sqlmock.NewRows([]string{"period", "total_amount"}).
		AddRow("2026-08", 150.50)
	mock.ExpectQuery(`WHERE paid_date IS NOT NULL`).WillReturnRows(rows)

	buckets, err := repo.FeesMonthly(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.InDelta(t, 150.50, buckets[0].TotalAmount, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
