package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
)

// ChartHandler exposes the aggregated chart-data endpoints. These answer
// with bare JSON shapes consumed directly by the dashboard charts, not the
// common envelope.
type ChartHandler struct {
	charts *service.ChartService
}

// NewChartHandler constructs ChartHandler.
func NewChartHandler(charts *service.ChartService) *ChartHandler {
	return &ChartHandler{charts: charts}
}

// AttendanceChart godoc
// @Summary Monthly attendance percentages
// @Tags Charts
// @Produce json
// @Success 200 {object} models.AttendanceChart
// @Router /attendance/chart-data [get]
func (h *ChartHandler) AttendanceChart(c *gin.Context) {
	chart, err := h.charts.AttendanceChart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}

// FeesChart godoc
// @Summary Monthly collected fee totals
// @Tags Charts
// @Produce json
// @Success 200 {object} models.FeesChart
// @Router /fees/chart-data [get]
func (h *ChartHandler) FeesChart(c *gin.Context) {
	chart, err := h.charts.FeesChart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}
