package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM opens the embedded database holding the tracker's collections.
// MEEPLE_DB points at the file; the default lives in the working directory.
func ConnectGORM() (*gorm.DB, error) {
	path := os.Getenv("MEEPLE_DB")
	if path == "" {
		path = "meeple.db"
	}

	gormConfig := &gorm.Config{}
	if os.Getenv("VERBOSE_SQL") == "true" {
		newLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		)
		gormConfig.Logger = newLogger
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		log.Printf("Error opening database %s: %v", path, err)
		return nil, err
	}

	log.Printf("Successfully opened database %s", path)
	return db, nil
}
