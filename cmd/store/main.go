package main

import (
	"log"
	"os"

	"github.com/apisuite/apisuite/internal/store/cart"
	"github.com/apisuite/apisuite/internal/store/db"
	"github.com/apisuite/apisuite/internal/store/orders"
	"github.com/apisuite/apisuite/internal/store/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dsn := os.Getenv("STORE_DATABASE_URL")

	if dsn == "" {
		dsn = "store.db"
	}

	if err := db.Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ordersFile := os.Getenv("ORDERS_FILE")

	if ordersFile == "" {
		ordersFile = "orders.json"
	}

	r := router.New(cart.NewStore(), orders.NewLog(ordersFile))

	port := os.Getenv("PORT")

	if port == "" {
		port = "8001"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
