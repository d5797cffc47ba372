package database

import (
	"fmt"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured database and stores it in DB.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	DB = db
	return db, nil
}

// Migrate creates or updates every table the console uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Prompt{},
		&models.PromptVersion{},
		&models.PromptShot{},
		&models.PromptTemplate{},
		&models.ModelConfig{},
	)
}
