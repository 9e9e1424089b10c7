package middleware

import (
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestCounter logs every request with a process-wide sequence number and
// stamps it on the response.
func RequestCounter() gin.HandlerFunc {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var count uint64

	return func(ctx *gin.Context) {
		n := atomic.AddUint64(&count, 1)

		ctx.Header("X-Request-Count", strconv.FormatUint(n, 10))
		ctx.Next()

		logger.WithFields(logrus.Fields{
			"request": n,
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"ip":      ctx.ClientIP(),
			"status":  ctx.Writer.Status(),
		}).Info("request")
	}
}
