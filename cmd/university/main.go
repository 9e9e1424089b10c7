package main

import (
	"log"
	"os"

	"github.com/apisuite/apisuite/internal/university/auth"
	"github.com/apisuite/apisuite/internal/university/db"
	"github.com/apisuite/apisuite/internal/university/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dsn := os.Getenv("UNIVERSITY_DATABASE_URL")

	if dsn == "" {
		dsn = "university.db"
	}

	if err := db.Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	usersFile := os.Getenv("USERS_FILE")

	if usersFile == "" {
		usersFile = "users.json"
	}

	logPath := os.Getenv("REQUEST_LOG_FILE")

	if logPath == "" {
		logPath = "logs/requests.log"
	}

	r := router.New(auth.NewFileStore(usersFile), logPath)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
