package database

import (
	"gorm.io/gorm"
	"newsletter.app/pkg/errors"
)

// AutoMigrate creates or updates the schema of every model
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&SubscriptionModel{},
		&TokenModel{},
		&IdempotencyModel{},
	)
	if err != nil {
		return errors.NewDatabaseError("failed to migrate database", err)
	}
	return nil
}
