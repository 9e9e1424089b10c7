package handlers

import (
	"net/http"

	"github.com/apisuite/apisuite/internal/university/auth"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Users *auth.FileStore
}

func NewAuthHandler(users *auth.FileStore) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Login checks the file-backed user table and hands back the username as the
// opaque bearer token.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, ok := h.Users.Authenticate(req.Username, req.Password)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": user.Username, "token_type": "bearer"})
}
