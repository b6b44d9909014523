package db

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "fr24/spotter/internal/models/gorm"
)

var CacheDB *gorm.DB

// InitCacheORM opens the flight cache store. By default this is an embedded
// sqlite file next to the binary; setting CACHE_DSN to a postgres DSN moves
// the same table to Postgres.
func InitCacheORM() (*gorm.DB, error) {
	var dialector gorm.Dialector

	if dsn := os.Getenv("CACHE_DSN"); strings.HasPrefix(dsn, "postgres") {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("CACHE_DB_PATH")
		if path == "" {
			path = "flights_cache.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open flight cache store: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.CachedFlight{}); err != nil {
		return nil, fmt.Errorf("failed to migrate flight cache store: %w", err)
	}

	CacheDB = db
	return db, nil
}
