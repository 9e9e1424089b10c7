package router

import (
	"time"

	"github.com/apisuite/apisuite/internal/store/cart"
	"github.com/apisuite/apisuite/internal/store/handlers"
	"github.com/apisuite/apisuite/internal/store/middleware"
	"github.com/apisuite/apisuite/internal/store/orders"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(carts *cart.Store, orderLog *orders.Log) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ResponseTime())

	r.GET("/", handlers.Root)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	products := r.Group("/products")
	{
		products.GET("", handlers.ListProducts)
		products.GET("/:id", handlers.GetProduct)
		products.GET("/search/:query", handlers.SearchProducts)
	}

	admin := r.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)
	}

	cartHandler := handlers.NewCartHandler(carts, orderLog)

	cartGroup := r.Group("/cart", middleware.RequireAuth())
	{
		cartGroup.POST("/add", cartHandler.Add)
		cartGroup.GET("", cartHandler.View)
		cartGroup.POST("/checkout", cartHandler.Checkout)
		cartGroup.DELETE("/clear", cartHandler.Clear)
	}

	return r
}
