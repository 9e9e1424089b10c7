package router

import (
	"time"

	"github.com/apisuite/apisuite/internal/addressbook/handlers"
	"github.com/apisuite/apisuite/internal/addressbook/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(ipLogPath string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.NewIPLogger(ipLogPath))

	r.GET("/", handlers.Root)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	r.GET("/user/profile", middleware.RequireAuth(), handlers.Profile)

	contacts := r.Group("/contacts", middleware.RequireAuth())
	{
		contacts.POST("", handlers.CreateContact)
		contacts.GET("", handlers.ListContacts)
		contacts.GET("/:id", handlers.GetContact)
		contacts.PUT("/:id", handlers.UpdateContact)
		contacts.DELETE("/:id", handlers.DeleteContact)
		contacts.GET("/search/:query", handlers.SearchContacts)
	}

	return r
}
