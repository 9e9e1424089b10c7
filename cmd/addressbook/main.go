package main

import (
	"log"
	"os"

	"github.com/apisuite/apisuite/internal/addressbook/db"
	"github.com/apisuite/apisuite/internal/addressbook/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dsn := os.Getenv("ADDRESSBOOK_DATABASE_URL")

	if dsn == "" {
		dsn = "addressbook.db"
	}

	if err := db.Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ipLog := os.Getenv("IP_LOG_FILE")

	if ipLog == "" {
		ipLog = "ip_requests.log"
	}

	r := router.New(ipLog)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8004"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
