package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/middleware"
	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

// AuthHandler exposes signup, login and logout endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate with username, password and role
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if claims := claimsFromContext(c); claims != nil {
		response.Flash(c, http.StatusOK, nil, "You are already logged in", middleware.IndexPath)
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), loginEcho(req))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, loginEcho(req))
		return
	}

	response.Flash(c, http.StatusOK, result, "Logged in successfully", middleware.IndexPath)
}

// Signup godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "New account"
// @Success 201 {object} response.Envelope
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	if claims := claimsFromContext(c); claims != nil {
		response.Flash(c, http.StatusOK, nil, "You are already logged in", middleware.IndexPath)
		return
	}

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), signupEcho(req))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, signupEcho(req))
		return
	}

	response.Flash(c, http.StatusCreated, user, "Signup successful. Please login.", middleware.LoginPath)
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; the client discards its copy.
	response.Flash(c, http.StatusOK, nil, "Logged out", middleware.LoginPath)
}

// loginEcho returns the submitted fields, minus the password, so the
// client can re-render the form.
func loginEcho(req models.LoginRequest) map[string]interface{} {
	return map[string]interface{}{
		"submitted": map[string]string{"username": req.Username, "role": req.Role},
	}
}

func signupEcho(req models.SignupRequest) map[string]interface{} {
	return map[string]interface{}{
		"submitted": map[string]string{"username": req.Username, "role": req.Role},
	}
}
