package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/relinfo/pkg/metrics"
)

// Metrics はリクエスト数と処理時間をPrometheusメトリクスに記録するGinミドルウェアを返す。
// パスのラベルにはルート定義（例: /api/v1/version/:version）を使い、カーディナリティを抑える。
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
