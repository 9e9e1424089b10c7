package db

import (
	"strings"

	"github.com/apisuite/apisuite/internal/career/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and runs migrations. A postgres URL selects the
// postgres driver, anything else is treated as a SQLite file path.
func Connect(dsn string) error {
	dialector := sqlite.Open(dsn)

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	}

	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return err
	}

	return DB.AutoMigrate(&models.JobApplication{})
}
