package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const examsPath = "/exams"

// ExamHandler exposes exam endpoints.
type ExamHandler struct {
	exams *service.ExamService
}

// NewExamHandler constructs ExamHandler.
func NewExamHandler(exams *service.ExamService) *ExamHandler {
	return &ExamHandler{exams: exams}
}

// List godoc
// @Summary List exams
// @Tags Exams
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.exams.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams, nil)
}

// Add godoc
// @Summary Schedule an exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param payload body service.ExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams/add [post]
func (h *ExamHandler) Add(c *gin.Context) {
	var req service.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	exam, err := h.exams.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, exam, "Exam added", examsPath)
}

// EditForm godoc
// @Summary Load an exam for editing
// @Tags Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/edit/{id} [get]
func (h *ExamHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	exam, err := h.exams.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, examsPath))
		return
	}
	response.JSON(c, http.StatusOK, exam, nil)
}

// Edit godoc
// @Summary Update an exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param payload body service.ExamRequest true "Exam payload"
// @Success 200 {object} response.Envelope
// @Router /exams/edit/{id} [post]
func (h *ExamHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	exam, err := h.exams.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, examsPath))
		return
	}
	response.Flash(c, http.StatusOK, exam, "Exam updated", examsPath)
}

// Delete godoc
// @Summary Delete an exam
// @Tags Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/delete/{id} [post]
func (h *ExamHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.exams.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, examsPath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Exam deleted", examsPath)
}
