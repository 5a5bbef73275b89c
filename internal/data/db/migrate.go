package db

import (
	"gorm.io/gorm"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity + roles
		&types.User{},
		&types.UserToken{},

		// Annotation sink (append-only)
		&types.Annotation{},
	)
}
