package main

import (
	"log"
	"os"

	"github.com/apisuite/apisuite/internal/career/db"
	"github.com/apisuite/apisuite/internal/career/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dsn := os.Getenv("CAREER_DATABASE_URL")

	if dsn == "" {
		dsn = "career.db"
	}

	if err := db.Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	r := router.New()

	port := os.Getenv("PORT")

	if port == "" {
		port = "8002"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
