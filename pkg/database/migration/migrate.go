package migration

import (
	"fmt"

	"github.com/latoulicious/ailie/pkg/database/models"
	"github.com/latoulicious/ailie/pkg/logging"
	"gorm.io/gorm"
)

// Models returns the schema models in creation order. Guilds come before
// guardians because guardians reference them.
func Models() []interface{} {
	return []interface{}{
		&models.Guild{},
		&models.Guardian{},
		&models.GuardianHero{},
		&models.GuardianEquipment{},
		&models.CommandLog{},
	}
}

// RunMigration creates or updates every table
func RunMigration(db *gorm.DB, logger logging.Logger) error {
	logger.Info("Running database migrations...", map[string]interface{}{
		"dialect": db.Dialector.Name(),
	})

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Migrations completed successfully", nil)
	return nil
}

// Reset drops every table in reverse creation order
func Reset(db *gorm.DB, logger logging.Logger) error {
	logger.Warn("Resetting database", map[string]interface{}{
		"dialect": db.Dialector.Name(),
	})

	tables := Models()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	logger.Info("Database reset successfully", nil)
	return nil
}
