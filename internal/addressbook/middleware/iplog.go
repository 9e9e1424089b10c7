package middleware

import (
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewIPLogger returns middleware that logs every request with the resolved
// client IP and stamps it on the response. X-Real-IP takes precedence over
// the first X-Forwarded-For entry, which takes precedence over the socket
// address.
func NewIPLogger(logPath string) gin.HandlerFunc {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		logger.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		logger.Warnf("Failed to open log file %s: %v", logPath, err)
	}

	return func(ctx *gin.Context) {
		clientIP := ctx.RemoteIP()

		if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
			clientIP = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}

		if realIP := ctx.GetHeader("X-Real-IP"); realIP != "" {
			clientIP = realIP
		}

		ctx.Header("X-Client-IP", clientIP)
		ctx.Next()

		logger.WithFields(logrus.Fields{
			"ip":         clientIP,
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"user_agent": ctx.Request.UserAgent(),
			"status":     ctx.Writer.Status(),
		}).Info("request")
	}
}
