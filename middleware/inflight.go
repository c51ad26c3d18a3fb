package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MaxInFlight 限制同时处理的请求数，超出时直接返回 503，不排队
// 连接池满时请求在池内等待，这里给等待队列设上限
func MaxInFlight(limit int, gauge prometheus.Gauge) gin.HandlerFunc {
	slots := make(chan struct{}, limit)
	return func(c *gin.Context) {
		select {
		case slots <- struct{}{}:
		default:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Server busy"})
			return
		}
		if gauge != nil {
			gauge.Inc()
		}
		defer func() {
			<-slots
			if gauge != nil {
				gauge.Dec()
			}
		}()
		c.Next()
	}
}
