package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type timingWriter struct {
	gin.ResponseWriter
	start time.Time
}

func (w *timingWriter) WriteHeader(code int) {
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', -1, 64))
	w.ResponseWriter.WriteHeader(code)
}

// ResponseTime stamps every response with the time spent handling the
// request, in seconds. The header has to be set before the status line is
// written, hence the writer wrapper.
func ResponseTime() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer = &timingWriter{ResponseWriter: ctx.Writer, start: time.Now()}
		ctx.Next()
	}
}
