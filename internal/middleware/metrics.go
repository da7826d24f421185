package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver recebe a medição de cada requisição atendida
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// RequestMetrics mede latência e status por rota (c.FullPath, não a URL, para limitar a cardinalidade)
func RequestMetrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
