package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/school-erp/school-erp-api/pkg/export"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
)

// ExportFormat names a supported download format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders entity lists as CSV or PDF downloads.
type ExportService struct {
	students studentRepository
	teachers teacherRepository
	fees     feeRepository
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(students studentRepository, teachers teacherRepository, fees feeRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		teachers: teachers,
		fees:     fees,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Students renders the student list in the requested format.
func (s *ExportService) Students(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	dataset := export.Dataset{Headers: []string{"ID", "Name", "Class", "Age"}}
	for _, st := range students {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":    strconv.FormatInt(st.ID, 10),
			"Name":  st.Name,
			"Class": st.StudentClass,
			"Age":   strconv.Itoa(st.Age),
		})
	}
	return s.render(dataset, "Students", "students", format)
}

// Teachers renders the teacher list in the requested format.
func (s *ExportService) Teachers(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	dataset := export.Dataset{Headers: []string{"ID", "Name", "Subject", "Phone"}}
	for _, t := range teachers {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":      strconv.FormatInt(t.ID, 10),
			"Name":    t.Name,
			"Subject": t.Subject,
			"Phone":   t.Phone,
		})
	}
	return s.render(dataset, "Teachers", "teachers", format)
}

// Fees renders the fee list in the requested format.
func (s *ExportService) Fees(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	fees, err := s.fees.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}
	dataset := export.Dataset{Headers: []string{"ID", "Student", "Amount", "Paid Date", "Status"}}
	for _, f := range fees {
		paid := ""
		if f.PaidDate != nil {
			paid = f.PaidDate.Format(dateLayout)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":        strconv.FormatInt(f.ID, 10),
			"Student":   f.StudentName,
			"Amount":    strconv.FormatFloat(f.Amount, 'f', 2, 64),
			"Paid Date": paid,
			"Status":    f.Status,
		})
	}
	return s.render(dataset, "Fees", "fees", format)
}

func (s *ExportService) render(dataset export.Dataset, title, slug string, format ExportFormat) (*ExportFile, error) {
	stamp := time.Now().UTC().Format("20060102-150405")
	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-%s.csv", slug, stamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-%s.pdf", slug, stamp),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
