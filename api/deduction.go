package api

import (
	"taxcalc/models"
	"taxcalc/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DeductionHandler 减免处理器
type DeductionHandler struct {
	deductions *service.DeductionService
	errors     *ErrorReporter
}

func NewDeductionHandler(deductions *service.DeductionService, errors *ErrorReporter) *DeductionHandler {
	return &DeductionHandler{deductions: deductions, errors: errors}
}

type AddDeductionRequest struct {
	UserID         uint                `json:"user_id" binding:"required" example:"1"`
	PersonalFamily decimal.NullDecimal `json:"personal_family" swaggertype:"number" example:"60000"`
	SavingInvest   decimal.NullDecimal `json:"saving_invest" swaggertype:"number"`
	Residence      decimal.NullDecimal `json:"residence" swaggertype:"number"`
	Donate         decimal.NullDecimal `json:"donate" swaggertype:"number"`
	Other          decimal.NullDecimal `json:"other" swaggertype:"number"`
}

// List 获取全部减免记录
// @Summary 获取全部减免记录
// @Tags 减免
// @Produce json
// @Success 200 {array} models.Deduction "减免列表"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /deduction [get]
func (h *DeductionHandler) List(c *gin.Context) {
	list, err := h.deductions.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	List(c, list)
}

// Add 新增减免记录
// @Summary 新增减免记录
// @Tags 减免
// @Accept json
// @Produce json
// @Param request body AddDeductionRequest true "减免信息"
// @Success 200 {object} AddedResponse "{message, id}"
// @Failure 400 {object} ErrorResponse "缺少 user_id"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /add-deduction [post]
func (h *DeductionHandler) Add(c *gin.Context) {
	var req AddDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.Respond(c, bindError(err, service.MsgUserIDRequired))
		return
	}

	d := &models.Deduction{
		UserID:         req.UserID,
		PersonalFamily: req.PersonalFamily,
		SavingInvest:   req.SavingInvest,
		Residence:      req.Residence,
		Donate:         req.Donate,
		Other:          req.Other,
	}
	if err := h.deductions.Create(c.Request.Context(), d); err != nil {
		h.errors.Respond(c, err)
		return
	}
	Added(c, "Deduction added successfully", "id", d.ID)
}
