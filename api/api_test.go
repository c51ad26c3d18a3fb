package api

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"taxcalc/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	logs   *observer.ObservedLogs
}

func setupTestEnv(t *testing.T, opts service.UserOptions) *testEnv {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.MinCost
	}
	store := service.NewStore(gormDB, 0)
	reporter := NewErrorReporter(log, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	users := NewUserHandler(service.NewUserService(store, log, opts), reporter)
	incomes := NewIncomeHandler(service.NewIncomeService(store), reporter)
	deductions := NewDeductionHandler(service.NewDeductionService(store), reporter)
	homepage := NewHomepageHandler(service.NewHomepageService(store), reporter)

	r.GET("/users", users.List)
	r.POST("/add-user", users.Add)
	r.GET("/income", incomes.List)
	r.POST("/add-income", incomes.Add)
	r.GET("/deduction", deductions.List)
	r.POST("/add-deduction", deductions.Add)
	r.GET("/homepage", homepage.Get)
	r.GET("/export/homepage", homepage.Export)

	return &testEnv{router: r, mock: mock, logs: logs}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// capturedArg 记录写入数据库的参数值
type capturedArg struct {
	value *string
}

func (a capturedArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*a.value = s
	}
	return ok
}
