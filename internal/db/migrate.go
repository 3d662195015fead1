package db

import (
	"gorm.io/gorm"

	librarygorm "github.com/cuihairu/playshelf/internal/repo/gorm/library"
	usersgorm "github.com/cuihairu/playshelf/internal/repo/gorm/users"
)

// Migrate creates or updates the users and user_games tables.
func Migrate(db *gorm.DB) error {
	if err := usersgorm.AutoMigrate(db); err != nil {
		return err
	}
	return librarygorm.AutoMigrate(db)
}
