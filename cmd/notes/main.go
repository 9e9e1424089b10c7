package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/apisuite/apisuite/internal/notes/backup"
	"github.com/apisuite/apisuite/internal/notes/db"
	"github.com/apisuite/apisuite/internal/notes/models"
	"github.com/apisuite/apisuite/internal/notes/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dsn := os.Getenv("NOTES_DATABASE_URL")

	if dsn == "" {
		dsn = "notes.db"
	}

	if err := db.Connect(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	backupFile := os.Getenv("BACKUP_FILE")

	if backupFile == "" {
		backupFile = "notes.json"
	}

	backupStore := backup.NewStore(backupFile)

	if interval := os.Getenv("BACKUP_INTERVAL"); interval != "" {
		seconds, err := strconv.Atoi(interval)

		if err != nil || seconds <= 0 {
			log.Fatalf("Invalid BACKUP_INTERVAL: %q", interval)
		}

		runner := backup.StartRunner(backupStore, time.Duration(seconds)*time.Second, func() ([]models.Note, error) {
			var notes []models.Note
			err := db.DB.Find(&notes).Error
			return notes, err
		})
		defer runner.Stop()
	}

	r := router.New(backupStore)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8003"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
