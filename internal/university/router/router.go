package router

import (
	"time"

	"github.com/apisuite/apisuite/internal/university/auth"
	"github.com/apisuite/apisuite/internal/university/handlers"
	"github.com/apisuite/apisuite/internal/university/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(users *auth.FileStore, logPath string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.NewRequestLogger(logPath))

	authHandler := handlers.NewAuthHandler(users)

	r.GET("/", handlers.Root)

	r.POST("/auth/login", authHandler.Login)

	// Students require authentication but are not scoped to a user.
	students := r.Group("/students", middleware.RequireAuth(users))
	{
		students.POST("", handlers.CreateStudent)
		students.GET("", handlers.ListStudents)
		students.GET("/:id", handlers.GetStudent)
		students.PUT("/:id", handlers.UpdateStudent)
		students.DELETE("/:id", handlers.DeleteStudent)
		students.GET("/search/:query", handlers.SearchStudents)
	}

	return r
}
