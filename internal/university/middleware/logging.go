package middleware

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRequestLogger returns middleware that logs method, path, client IP,
// status, and elapsed time for every request to the given file.
func NewRequestLogger(logPath string) gin.HandlerFunc {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		logger.Warnf("Failed to create log directory: %v", err)
	}

	if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		logger.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		logger.Warnf("Failed to open log file %s: %v", logPath, err)
	}

	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"ip":      ctx.ClientIP(),
			"status":  ctx.Writer.Status(),
			"elapsed": time.Since(start).Seconds(),
		}).Info("request")
	}
}
