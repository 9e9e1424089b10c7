package router

import (
	"github.com/apisuite/apisuite/internal/career/handlers"
	"github.com/apisuite/apisuite/internal/career/middleware"
	"github.com/gin-gonic/gin"
)

func New() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequireUserAgent())

	r.GET("/", handlers.Root)

	r.POST("/auth/login", handlers.Login)

	applications := r.Group("/applications", middleware.RequireAuth())
	{
		applications.POST("", handlers.CreateApplication)
		applications.GET("", handlers.ListApplications)
		applications.GET("/search", handlers.SearchApplications)
		applications.GET("/:id", handlers.GetApplication)
		applications.PUT("/:id", handlers.UpdateApplication)
		applications.DELETE("/:id", handlers.DeleteApplication)
	}

	return r
}
