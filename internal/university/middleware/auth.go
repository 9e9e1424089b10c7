package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/apisuite/apisuite/internal/university/auth"
	"github.com/gin-gonic/gin"
)

const ContextUserKey = "user"

// RequireAuth resolves the opaque bearer token against the file-backed user
// table.
func RequireAuth(users *auth.FileStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, ok := users.Lookup(parts[1])

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

func CurrentUser(ctx *gin.Context) (auth.User, error) {
	value, exists := ctx.Get(ContextUserKey)

	if !exists {
		return auth.User{}, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(auth.User)

	if !ok {
		return auth.User{}, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}
