package migration

import (
	"fmt"

	"gorm.io/gorm"

	"clubcms/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.NewsModel{},
		&models.CalendarEventModel{},
		&models.ImageModel{},
	}
}

// AutoMigrate creates or updates the schema from the GORM models. Used by the
// server's --auto-migrate flag and by mysql deployments where the embedded
// sqlite migration scripts do not apply.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
