package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const classesPath = "/classes"

// ClassHandler exposes class endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List godoc
// @Summary List classes
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}

// Add godoc
// @Summary Add a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body service.ClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Router /classes/add [post]
func (h *ClassHandler) Add(c *gin.Context) {
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	class, err := h.classes.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, class, "Class added successfully", classesPath)
}

// EditForm godoc
// @Summary Load a class for editing
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/edit/{id} [get]
func (h *ClassHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	class, err := h.classes.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, classesPath))
		return
	}
	response.JSON(c, http.StatusOK, class, nil)
}

// Edit godoc
// @Summary Update a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param payload body service.ClassRequest true "Class payload"
// @Success 200 {object} response.Envelope
// @Router /classes/edit/{id} [post]
func (h *ClassHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	class, err := h.classes.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, classesPath))
		return
	}
	response.Flash(c, http.StatusOK, class, "Class updated successfully", classesPath)
}

// Delete godoc
// @Summary Delete a class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /classes/delete/{id} [post]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.classes.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, classesPath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Class deleted", classesPath)
}
