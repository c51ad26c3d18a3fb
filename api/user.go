package api

import (
	"taxcalc/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	users  *service.UserService
	errors *ErrorReporter
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users *service.UserService, errors *ErrorReporter) *UserHandler {
	return &UserHandler{users: users, errors: errors}
}

// AddUserRequest 注册请求
type AddUserRequest struct {
	Firstname       string `json:"firstname" binding:"required" example:"Somchai"`
	Lastname        string `json:"lastname" binding:"required" example:"Jaidee"`
	Email           string `json:"email" binding:"required" example:"somchai@example.com"`
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password" example:"secret123"`
}

// List 获取全部用户
// @Summary 获取全部用户
// @Description 返回 users 表的全部记录，不分页；默认不返回密码哈希
// @Tags 用户
// @Produce json
// @Success 200 {array} models.User "用户列表"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	List(c, users)
}

// Add 用户注册
// @Summary 用户注册
// @Description 校验必填字段与两次密码一致，邮箱唯一，密码使用 bcrypt 哈希后保存
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body AddUserRequest true "注册信息"
// @Success 200 {object} AddedResponse "{message, userId}"
// @Failure 400 {object} ErrorResponse "缺少字段 / 密码不一致 / 邮箱已存在"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /add-user [post]
func (h *UserHandler) Add(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.Respond(c, bindError(err, service.MsgMissingFields))
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	Added(c, "User added successfully", "userId", user.ID)
}
