package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(2, 200*time.Millisecond))
	router.POST("/add-user", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/add-user", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "Too many requests")

	// 不同 IP 互不影响
	assert.Equal(t, 200, doReq("192.168.1.2").Code)

	// 窗口过后恢复
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
}

func TestSlidingWindow_Sweep(t *testing.T) {
	w := newSlidingWindow(1, time.Second)
	now := time.Now()
	assert.True(t, w.allow("a", now))
	assert.False(t, w.allow("a", now.Add(500*time.Millisecond)))

	w.sweep(now.Add(2 * time.Second))
	assert.Empty(t, w.hits)
	assert.True(t, w.allow("a", now.Add(2*time.Second)))
}
