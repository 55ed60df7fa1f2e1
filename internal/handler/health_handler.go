package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
)

// HealthHandler exposes the connectivity diagnostics. Both endpoints skip
// the response envelope: monitors consume them as-is.
type HealthHandler struct {
	dashboard *service.DashboardService
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(dashboard *service.DashboardService) *HealthHandler {
	return &HealthHandler{dashboard: dashboard}
}

// DBCheck godoc
// @Summary Plain-text database connectivity check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /db-check [get]
func (h *HealthHandler) DBCheck(c *gin.Context) {
	if err := h.dashboard.PingDatabase(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("DB error: %v", err))
		return
	}
	c.String(http.StatusOK, "OK")
}

// Health godoc
// @Summary Server and database health report
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	data := gin.H{"server": "ok"}
	if err := h.dashboard.PingDatabase(c.Request.Context()); err != nil {
		data["db"] = fmt.Sprintf("error: %v", err)
	} else {
		data["db"] = "ok"
	}
	// Always 200: the body carries the component states.
	c.JSON(http.StatusOK, data)
}
