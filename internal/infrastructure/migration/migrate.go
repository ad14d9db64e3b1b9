package migration

import (
	"fmt"

	"gorm.io/gorm"

	"homeward/internal/infrastructure/persistence/models"
	appLogger "homeward/internal/shared/logger"
)

// Run applies the schema for all persistence models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.PropertyModel{},
		&models.TicketModel{},
		&models.CommentModel{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	appLogger.Info("database migrations applied")
	return nil
}
