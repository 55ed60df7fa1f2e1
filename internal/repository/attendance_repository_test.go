package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-erp/school-erp-api/internal/models"
)

func TestAttendanceRepositoryListJoinsNames(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "date", "status", "student_name", "class_name"}).
		AddRow(int64(5), day, "Present", "Arif", "5A")
	mock.ExpectQuery(`JOIN students s ON a\.student_id = s\.id`).
		WillReturnRows(rows)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Arif", records[0].StudentName)
	assert.Equal(t, "5A", records[0].ClassName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance (student_id, class_id, date, status) VALUES ($1, $2, $3, $4) RETURNING id")).
		WithArgs(int64(1), int64(2), day, "Present").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	record := &models.Attendance{StudentID: 1, ClassID: 2, Date: day, Status: "Present"}
	require.NoError(t, repo.Create(context.Background(), record))
	assert.Equal(t, int64(9), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
