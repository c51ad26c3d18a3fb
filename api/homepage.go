package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"taxcalc/service"

	"github.com/gin-gonic/gin"
)

// HomepageHandler 首页聚合与导出
type HomepageHandler struct {
	homepage *service.HomepageService
	errors   *ErrorReporter
}

func NewHomepageHandler(homepage *service.HomepageService, errors *ErrorReporter) *HomepageHandler {
	return &HomepageHandler{homepage: homepage, errors: errors}
}

// Get 首页数据
// @Summary 首页数据
// @Description users LEFT JOIN income LEFT JOIN deduction，不聚合；无对应记录的字段为 null
// @Tags 首页
// @Produce json
// @Success 200 {array} models.HomepageRow "首页数据"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /homepage [get]
func (h *HomepageHandler) Get(c *gin.Context) {
	rows, err := h.homepage.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	List(c, rows)
}

// Export 导出首页数据
// @Summary 导出首页数据
// @Description 以 xlsx（默认）或 csv 格式下载首页数据
// @Tags 首页
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "导出格式 xlsx / csv" default(xlsx)
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse "不支持的格式"
// @Failure 500 {object} ErrorResponse "数据库错误"
// @Router /export/homepage [get]
func (h *HomepageHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		BadRequest(c, "Unsupported export format")
		return
	}

	rows, err := h.homepage.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	var (
		buf         *bytes.Buffer
		contentType string
	)
	if format == "csv" {
		buf, err = service.HomepageCSV(rows)
		contentType = "text/csv; charset=utf-8"
	} else {
		buf, err = service.HomepageWorkbook(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("homepage_%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
