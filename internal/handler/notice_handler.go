package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const noticesPath = "/notices"

// NoticeHandler exposes notice endpoints. List and edit responses bundle
// the class dropdown options used to scope a notice.
type NoticeHandler struct {
	notices *service.NoticeService
	classes *service.ClassService
}

// NewNoticeHandler constructs NoticeHandler.
func NewNoticeHandler(notices *service.NoticeService, classes *service.ClassService) *NoticeHandler {
	return &NoticeHandler{notices: notices, classes: classes}
}

// List godoc
// @Summary List notices with form options
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.notices.List(c.Request.Context())
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
		"notices": notices,
		"classes": classes,
	}, nil)
}

// Add godoc
// @Summary Publish a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param payload body service.NoticeRequest true "Notice payload"
// @Success 201 {object} response.Envelope
// @Router /notices/add [post]
func (h *NoticeHandler) Add(c *gin.Context) {
	var req service.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	notice, err := h.notices.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, notice, "Notice added", noticesPath)
}

// EditForm godoc
// @Summary Load a notice for editing
// @Tags Notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} response.Envelope
// @Router /notices/edit/{id} [get]
func (h *NoticeHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	notice, err := h.notices.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, noticesPath))
		return
	}
	classes, err := h.classes.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"notice":  notice,
		"classes": classes,
	}, nil)
}

// Edit godoc
// @Summary Update a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param id path int true "Notice ID"
// @Param payload body service.NoticeRequest true "Notice payload"
// @Success 200 {object} response.Envelope
// @Router /notices/edit/{id} [post]
func (h *NoticeHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	notice, err := h.notices.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, noticesPath))
		return
	}
	response.Flash(c, http.StatusOK, notice, "Notice updated", noticesPath)
}

// Delete godoc
// @Summary Delete a notice
// @Tags Notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} response.Envelope
// @Router /notices/delete/{id} [post]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.notices.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, noticesPath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Notice deleted", noticesPath)
}
