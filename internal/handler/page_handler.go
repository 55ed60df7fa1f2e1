package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/pkg/response"
)

// PageHandler serves the public informational pages the landing cards
// link to. The payloads are static descriptors; the client renders them.
type PageHandler struct{}

// NewPageHandler constructs PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home godoc
// @Summary Public home page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /home [get]
func (h *PageHandler) Home(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"page": "home", "title": "Home"}, nil)
}

// Teams godoc
// @Summary Public teams page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teams [get]
func (h *PageHandler) Teams(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"page": "teams", "title": "Our Teams"}, nil)
}

// Contact godoc
// @Summary Public contact page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contact [get]
func (h *PageHandler) Contact(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"page": "contact", "title": "Contact Us"}, nil)
}

// About godoc
// @Summary Public about page
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /about [get]
func (h *PageHandler) About(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"page": "about", "title": "About"}, nil)
}
