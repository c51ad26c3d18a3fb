package api

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"taxcalc/middleware"
	"taxcalc/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrorReporter 错误到 HTTP 状态码的统一转换
// ValidationError / ConflictError -> 400，其余一律 500，详情只写日志
type ErrorReporter struct {
	log         *zap.Logger
	storeErrors *prometheus.CounterVec
}

// NewErrorReporter storeErrors 可为 nil
func NewErrorReporter(log *zap.Logger, storeErrors *prometheus.CounterVec) *ErrorReporter {
	return &ErrorReporter{log: log, storeErrors: storeErrors}
}

// Respond 写出错误响应
func (r *ErrorReporter) Respond(c *gin.Context, err error) {
	var ve *service.ValidationError
	var ce *service.ConflictError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
		return
	case errors.As(err, &ce):
		BadRequest(c, ce.Message)
		return
	}

	op := "unknown"
	msg := MsgInternalFailure
	var se *service.StoreError
	if errors.As(err, &se) {
		op = se.Op
		msg = MsgQueryFailed
		if strings.HasPrefix(se.Op, "insert") {
			msg = MsgInsertFailed
		}
		if r.storeErrors != nil {
			r.storeErrors.WithLabelValues(op).Inc()
		}
	}
	r.log.Error("请求处理失败",
		zap.String("op", op),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	InternalError(c, msg)
}

// bindError 将请求体解析/校验错误转换为 ValidationError
// missingMsg 用于必填字段缺失（含空请求体）
func bindError(err error, missingMsg string) error {
	if errors.Is(err, io.EOF) {
		return service.NewValidationError(missingMsg)
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			if fe.Tag() == "required" {
				return service.NewValidationError(missingMsg)
			}
		}
		for _, fe := range ves {
			if fe.Tag() == "eqfield" {
				return service.NewValidationError(service.MsgPasswordMismatch)
			}
		}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field == "user_id" {
		return service.NewValidationError(missingMsg)
	}
	return service.NewValidationError(service.MsgInvalidBody)
}
