package service

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// 返回给客户端的错误信息
const (
	MsgMissingFields    = "Missing required fields"
	MsgPasswordMismatch = "Passwords do not match!"
	MsgEmailExists      = "Email already exists!"
	MsgUserIDRequired   = "User ID is required"
	MsgInvalidBody      = "Invalid request body"
)

// mysql 错误码：唯一键冲突
const mysqlDuplicateEntry = 1062

// ValidationError 请求参数校验失败（缺字段、两次密码不一致等），对应 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError 创建校验错误
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ConflictError 数据冲突（邮箱已存在），对应 400
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError 创建冲突错误
func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// StoreError 数据库访问失败，对应 500；Err 只写日志，不返回给客户端
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError 包装数据库错误
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsDuplicateKey 判断是否为唯一键冲突
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
