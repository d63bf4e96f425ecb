package boot

import (
	"log"

	"gorm.io/gorm"

	"ttu/src/models"
)

func InitDb(db *gorm.DB) *gorm.DB {
	err := db.AutoMigrate(
		&models.Venue{},
		&models.Event{},
		&models.Ticket{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
