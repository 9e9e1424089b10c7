package handlers

import (
	"net/http"

	"github.com/apisuite/apisuite/internal/career/auth"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the fixed user table and hands back the username as the
// opaque bearer token.
func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, ok := auth.Authenticate(req.Username, req.Password)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": user.Username, "token_type": "bearer"})
}
