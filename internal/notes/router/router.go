package router

import (
	"time"

	"github.com/apisuite/apisuite/internal/notes/backup"
	"github.com/apisuite/apisuite/internal/notes/handlers"
	"github.com/apisuite/apisuite/internal/notes/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(backupStore *backup.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:5500"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestCounter())

	h := handlers.New(backupStore)

	r.GET("/", handlers.Root)

	notes := r.Group("/notes")
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Get)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
		notes.GET("/search/:query", h.Search)
	}

	r.GET("/backup/restore", h.Restore)

	return r
}
