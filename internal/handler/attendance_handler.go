package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const attendancePath = "/attendance"

// AttendanceHandler exposes attendance endpoints. List and edit responses
// bundle the student and class dropdown options the forms need.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	students   *service.StudentService
	classes    *service.ClassService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService, students *service.StudentService, classes *service.ClassService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, students: students, classes: classes}
}

// List godoc
// @Summary List attendance records with form options
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.attendance.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	students, err := h.students.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	classes, err := h.classes.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"records":  records,
		"students": students,
		"classes":  classes,
	}, nil)
}

// Add godoc
// @Summary Record attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.AttendanceRequest true "Attendance payload"
// @Success 201 {object} response.Envelope
// @Router /attendance/add [post]
func (h *AttendanceHandler) Add(c *gin.Context) {
	var req service.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	record, err := h.attendance.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, record, "Attendance record added", attendancePath)
}

// EditForm godoc
// @Summary Load an attendance record for editing
// @Tags Attendance
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/edit/{id} [get]
func (h *AttendanceHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.attendance.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, attendancePath))
		return
	}
	students, err := h.students.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	classes, err := h.classes.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"record":   record,
		"students": students,
		"classes":  classes,
	}, nil)
}

// Edit godoc
// @Summary Update an attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Param payload body service.AttendanceRequest true "Attendance payload"
// @Success 200 {object} response.Envelope
// @Router /attendance/edit/{id} [post]
func (h *AttendanceHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	record, err := h.attendance.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, attendancePath))
		return
	}
	response.Flash(c, http.StatusOK, record, "Attendance record updated", attendancePath)
}

// Delete godoc
// @Summary Delete an attendance record
// @Tags Attendance
// @Produce json
// @Param id path int true "Attendance ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/delete/{id} [post]
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.attendance.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, attendancePath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Attendance record deleted", attendancePath)
}
