// Package seeds provisions the initial data a fresh installation needs.
package seeds

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubcms/internal/infrastructure/persistence/models"
	"clubcms/internal/shared/constants"
	"clubcms/internal/shared/logger"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// SeedAdminUser creates the default admin account if no user with that
// username exists yet. The password must be changed after first login.
func SeedAdminUser(db *gorm.DB, bcryptCost int, log logger.Interface) error {
	var existing models.UserModel
	err := db.Where("username = ?", DefaultAdminUsername).First(&existing).Error
	if err == nil {
		log.Infow("admin user already exists, skipping seed", "username", DefaultAdminUsername)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := models.UserModel{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		Email:        "admin@clubcms.local",
		FullName:     "Administrator",
		Role:         constants.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Warnw("seeded default admin user, change the password immediately",
		"username", DefaultAdminUsername)
	return nil
}
