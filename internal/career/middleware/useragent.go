package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireUserAgent rejects any request without a User-Agent header before it
// reaches a handler.
func RequireUserAgent() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.UserAgent() == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User-Agent header is required"})
			return
		}

		ctx.Next()
	}
}
