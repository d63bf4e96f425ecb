package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ttu/src/config"
)

// Connect opens the single process-wide database handle. The handle is
// built once at startup and passed explicitly into every handler group.
func Connect() *gorm.DB {
	_db, err := gorm.Open(postgres.Open(config.GetDSN()))
	if err != nil {
		log.Fatalf("Error connecting to database: %s\n", err.Error())
	}
	sqlDB, err := _db.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return _db
}
