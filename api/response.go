package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 500 响应的通用信息，不暴露数据库错误详情
const (
	MsgQueryFailed     = "Database query failed"
	MsgInsertFailed    = "Database insertion failed"
	MsgInternalFailure = "Internal server error"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}

// AddedResponse 新增成功响应，ID 字段名因接口而异（userId / incomeId / id）
type AddedResponse map[string]any

// Added 新增成功
func Added(c *gin.Context, message, idKey string, id uint) {
	c.JSON(http.StatusOK, AddedResponse{
		"message": message,
		idKey:     id,
	})
}

// List 列表直接返回 JSON 数组
func List(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
