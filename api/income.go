package api

import (
	"taxcalc/models"
	"taxcalc/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	incomes *service.IncomeService
	errors  *ErrorReporter
}

func NewIncomeHandler(incomes *service.IncomeService, errors *ErrorReporter) *IncomeHandler {
	return &IncomeHandler{incomes: incomes, errors: errors}
}

// AddIncomeRequest 新增收入请求，除 user_id 外均可省略（保存为 NULL）
type AddIncomeRequest struct {
	UserID           uint                `json:"user_id" binding:"required" example:"1"`
	Salary           decimal.NullDecimal `json:"salary" swaggertype:"number" example:"360000"`
	Freelance        decimal.NullDecimal `json:"freelance" swaggertype:"number"`
	Copyright        decimal.NullDecimal `json:"copyright" swaggertype:"number"`
	InterestDividend decimal.NullDecimal `json:"interest_dividend" swaggertype:"number"`
	Rent             decimal.NullDecimal `json:"rent" swaggertype:"number"`
	Profession       decimal.NullDecimal `json:"profession" swaggertype:"number"`
	Contractor       decimal.NullDecimal `json:"contractor" swaggertype:"number"`
	SellProducts     decimal.NullDecimal `json:"sell_products" swaggertype:"number"`
	SumIncome        decimal.NullDecimal `json:"sum_income" swaggertype:"number" example:"360000"`
}

func (r AddIncomeRequest) toModel() *models.Income {
	return &models.Income{
		UserID:           r.UserID,
		Salary:           r.Salary,
		Freelance:        r.Freelance,
		Copyright:        r.Copyright,
		InterestDividend: r.InterestDividend,
		Rent:             r.Rent,
		Profession:       r.Profession,
		Contractor:       r.Contractor,
		SellProducts:     r.SellProducts,
		SumIncome:        r.SumIncome,
	}
}

// List 获取全部收入记录
// @Summary 获取全部收入记录
// @Description 返回 income 表全部记录，不按用户过滤
// @Tags 收入
// @Produce json
// @Success 200 {array} models.Income "收入列表"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	list, err := h.incomes.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	List(c, list)
}

// Add 新增收入记录
// @Summary 新增收入记录
// @Description 只校验 user_id，不检查用户是否存在
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body AddIncomeRequest true "收入信息"
// @Success 200 {object} AddedResponse "{message, incomeId}"
// @Failure 400 {object} ErrorResponse "缺少 user_id"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /add-income [post]
func (h *IncomeHandler) Add(c *gin.Context) {
	var req AddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.Respond(c, bindError(err, service.MsgUserIDRequired))
		return
	}

	in := req.toModel()
	if err := h.incomes.Create(c.Request.Context(), in); err != nil {
		h.errors.Respond(c, err)
		return
	}
	Added(c, "Income added successfully", "incomeId", in.ID)
}
