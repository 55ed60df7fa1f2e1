package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	"github.com/school-erp/school-erp-api/pkg/response"
)

// DashboardHandler serves the index page payloads: a public landing
// descriptor for visitors, the counts summary for authenticated users.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Index godoc
// @Summary Landing page or dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.JSON(c, http.StatusOK, gin.H{
			"page":  "landing",
			"title": "School ERP",
		}, nil)
		return
	}

	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil, map[string]interface{}{
		"username": claims.Username,
		"role":     claims.Role,
	})
}
