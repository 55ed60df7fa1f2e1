package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/service"
)

type fakeStudentRepo struct {
	students []models.Student
	deleted  []int64
}

func (f *fakeStudentRepo) List(context.Context) ([]models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentRepo) Options(context.Context) ([]models.StudentOption, error) {
	return nil, nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id int64) (*models.Student, error) {
	for i := range f.students {
		if f.students[i].ID == id {
			return &f.students[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = int64(len(f.students) + 1)
	f.students = append(f.students, *student)
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	for i := range f.students {
		if f.students[i].ID == student.ID {
			f.students[i] = *student
		}
	}
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newStudentHandler(repo *fakeStudentRepo) *StudentHandler {
	return NewStudentHandler(service.NewStudentService(repo, nil, nil))
}

func TestStudentAddFlashesToList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeStudentRepo{}
	handler := newStudentHandler(repo)

	rec := postJSON(t, handler.Add, "/students/add", service.StudentRequest{
		Name:         "Budi",
		StudentClass: "7A",
		Age:          13,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "Student added successfully", meta["message"])
	assert.Equal(t, studentsPath, meta["redirect"])
	require.Len(t, repo.students, 1)
	assert.Equal(t, "Budi", repo.students[0].Name)
}

func TestStudentAddValidationEchoesSubmitted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&fakeStudentRepo{})

	rec := postJSON(t, handler.Add, "/students/add", service.StudentRequest{
		Name: "Budi",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	submitted := body["meta"].(map[string]interface{})["submitted"].(map[string]interface{})
	assert.Equal(t, "Budi", submitted["name"])
}

func TestStudentEditUnknownIDReturns404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&fakeStudentRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/edit/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.EditForm(c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Student not found", errObj["message"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, studentsPath, meta["redirect"])
}

func TestStudentEditMissingRowRedirectsToList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&fakeStudentRepo{})

	body, err := json.Marshal(service.StudentRequest{Name: "Budi", StudentClass: "7A", Age: 13})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students/edit/99", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Edit(c)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	meta := envelope["meta"].(map[string]interface{})
	assert.Equal(t, studentsPath, meta["redirect"])
	submitted := meta["submitted"].(map[string]interface{})
	assert.Equal(t, "Budi", submitted["name"])
}

func TestStudentEditRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&fakeStudentRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students/edit/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.EditForm(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentDeleteFlashes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeStudentRepo{students: []models.Student{{ID: 4, Name: "Budi", StudentClass: "7A", Age: 13}}}
	handler := newStudentHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/students/delete/4", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	handler.Delete(c)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "Student deleted", meta["message"])
	assert.Equal(t, []int64{4}, repo.deleted)
}
