package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const studentsPath = "/students"

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Add godoc
// @Summary Add a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.StudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students/add [post]
func (h *StudentHandler) Add(c *gin.Context) {
	var req service.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, student, "Student added successfully", studentsPath)
}

// EditForm godoc
// @Summary Load a student for editing
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/edit/{id} [get]
func (h *StudentHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, studentsPath))
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Edit godoc
// @Summary Update a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.StudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/edit/{id} [post]
func (h *StudentHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	student, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, studentsPath))
		return
	}
	response.Flash(c, http.StatusOK, student, "Student updated successfully", studentsPath)
}

// Delete godoc
// @Summary Delete a student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/delete/{id} [post]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, studentsPath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Student deleted", studentsPath)
}

// submittedMeta echoes the rejected payload so the client can re-render
// the form with the user's input intact.
func submittedMeta(req interface{}) map[string]interface{} {
	return map[string]interface{}{"submitted": req}
}

// notFoundMeta points the client back at the list view when the row is
// missing. Other failures carry no redirect.
func notFoundMeta(err error, listPath string) map[string]interface{} {
	if appErrors.FromError(err).Status != http.StatusNotFound {
		return nil
	}
	return map[string]interface{}{"redirect": listPath}
}

// mutationMeta combines the submitted echo with the list redirect for
// missing rows.
func mutationMeta(err error, req interface{}, listPath string) map[string]interface{} {
	meta := submittedMeta(req)
	if appErrors.FromError(err).Status == http.StatusNotFound {
		meta["redirect"] = listPath
	}
	return meta
}
