package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	"github.com/school-erp/school-erp-api/pkg/response"
)

// ExportHandler streams entity lists as CSV or PDF downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Students godoc
// @Summary Download the student list
// @Tags Exports
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /students/export [get]
func (h *ExportHandler) Students(c *gin.Context) {
	h.serve(c, h.exports.Students)
}

// Teachers godoc
// @Summary Download the teacher list
// @Tags Exports
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /teachers/export [get]
func (h *ExportHandler) Teachers(c *gin.Context) {
	h.serve(c, h.exports.Teachers)
}

// Fees godoc
// @Summary Download the fee list
// @Tags Exports
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /fees/export [get]
func (h *ExportHandler) Fees(c *gin.Context) {
	h.serve(c, h.exports.Fees)
}

func (h *ExportHandler) serve(c *gin.Context, build func(context.Context, service.ExportFormat) (*service.ExportFile, error)) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	file, err := build(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
