package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

const feesPath = "/fees"

// FeeHandler exposes fee endpoints.
type FeeHandler struct {
	fees *service.FeeService
}

// NewFeeHandler constructs FeeHandler.
func NewFeeHandler(fees *service.FeeService) *FeeHandler {
	return &FeeHandler{fees: fees}
}

// List godoc
// @Summary List fee records
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	fees, err := h.fees.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees, nil)
}

// Add godoc
// @Summary Add a fee record
// @Tags Fees
// @Accept json
// @Produce json
// @Param payload body service.FeeRequest true "Fee payload"
// @Success 201 {object} response.Envelope
// @Router /fees/add [post]
func (h *FeeHandler) Add(c *gin.Context) {
	var req service.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	fee, err := h.fees.Create(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithMeta(c, err, submittedMeta(req))
		return
	}
	response.Flash(c, http.StatusCreated, fee, "Fee record added", feesPath)
}

// EditForm godoc
// @Summary Load a fee record for editing
// @Tags Fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Envelope
// @Router /fees/edit/{id} [get]
func (h *FeeHandler) EditForm(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	fee, err := h.fees.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, feesPath))
		return
	}
	response.JSON(c, http.StatusOK, fee, nil)
}

// Edit godoc
// @Summary Update a fee record
// @Tags Fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param payload body service.FeeRequest true "Fee payload"
// @Success 200 {object} response.Envelope
// @Router /fees/edit/{id} [post]
func (h *FeeHandler) Edit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMeta(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"), submittedMeta(req))
		return
	}
	fee, err := h.fees.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ErrorWithMeta(c, err, mutationMeta(err, req, feesPath))
		return
	}
	response.Flash(c, http.StatusOK, fee, "Fee record updated", feesPath)
}

// Delete godoc
// @Summary Delete a fee record
// @Tags Fees
// @Produce json
// @Param id path int true "Fee ID"
// @Success 200 {object} response.Envelope
// @Router /fees/delete/{id} [post]
func (h *FeeHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.fees.Delete(c.Request.Context(), id); err != nil {
		response.ErrorWithMeta(c, err, notFoundMeta(err, feesPath))
		return
	}
	response.Flash(c, http.StatusOK, nil, "Fee record deleted", feesPath)
}
