package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-erp/school-erp-api/internal/models"
)

type exportFeeRepo struct {
	fees []models.Fee
}

func (m *exportFeeRepo) List(ctx context.Context) ([]models.Fee, error) { return m.fees, nil }
func (m *exportFeeRepo) FindByID(ctx context.Context, id int64) (*models.Fee, error) {
	return nil, nil
}
func (m *exportFeeRepo) Create(ctx context.Context, fee *models.Fee) error { return nil }
func (m *exportFeeRepo) Update(ctx context.Context, fee *models.Fee) error { return nil }
func (m *exportFeeRepo) Delete(ctx context.Context, id int64) error        { return nil }

func TestExportStudentsCSV(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{ID: 1, Name: "Budi", StudentClass: "7A", Age: 13},
		{ID: 2, Name: "Sari", StudentClass: "8B", Age: 14},
	}}
	svc := NewExportService(repo, nil, nil, nil)

	file, err := svc.Students(context.Background(), ExportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "students-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Class,Age", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Budi")
	assert.Contains(t, lines[2], "Sari")
}

func TestExportFeesPDF(t *testing.T) {
	paid := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &exportFeeRepo{fees: []models.Fee{
		{ID: 1, StudentName: "Budi", Amount: 500000, PaidDate: &paid, Status: "paid"},
		{ID: 2, StudentName: "Sari", Amount: 500000, Status: "unpaid"},
	}}
	svc := NewExportService(nil, nil, repo, nil)

	file, err := svc.Fees(context.Background(), ExportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&mockStudentRepo{}, nil, nil, nil)

	_, err := svc.Students(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
