package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

type mockStudentRepo struct {
	students  []models.Student
	student   *models.Student
	findErr   error
	createErr error
	updated   *models.Student
	deletedID int64
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	return m.students, nil
}

func (m *mockStudentRepo) Options(ctx context.Context) ([]models.StudentOption, error) {
	options := make([]models.StudentOption, 0, len(m.students))
	for _, s := range m.students {
		options = append(options, models.StudentOption{ID: s.ID, Name: s.Name})
	}
	return options, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.student, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	student.ID = 1
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	m.updated = student
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return nil
}

func TestStudentServiceCreateValidatesPayload(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), StudentRequest{Name: "Arif"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	student, err := svc.Create(context.Background(), StudentRequest{Name: "Arif", StudentClass: "5A", Age: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)
}

func TestStudentServiceUpdateMissingIsNotFound(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{findErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.Update(context.Background(), 99, StudentRequest{Name: "Arif", StudentClass: "5A", Age: 10})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestStudentServiceUpdateAppliesFields(t *testing.T) {
	repo := &mockStudentRepo{student: &models.Student{ID: 7, Name: "Arif", StudentClass: "5A", Age: 10}}
	svc := NewStudentService(repo, nil, nil)

	student, err := svc.Update(context.Background(), 7, StudentRequest{Name: "Arif", StudentClass: "6A", Age: 11})
	require.NoError(t, err)
	assert.Equal(t, "6A", student.StudentClass)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
}

func TestStudentServiceDeleteChecksExistence(t *testing.T) {
	repo := &mockStudentRepo{student: &models.Student{ID: 7, Name: "Arif", StudentClass: "5A", Age: 10}}
	svc := NewStudentService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), repo.deletedID)

	missing := NewStudentService(&mockStudentRepo{findErr: sql.ErrNoRows}, nil, nil)
	err := missing.Delete(context.Background(), 99)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
