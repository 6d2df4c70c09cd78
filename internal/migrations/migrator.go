package migrations

import (
	"github.com/mdaffarh/eco-scan/internal/models"
	"gorm.io/gorm"
)

// Run applies the schema. AutoMigrate only adds; it never drops columns,
// which is what we want for a small deployment without migration tooling.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WasteLog{},
		&models.BinLocation{},
	)
}
