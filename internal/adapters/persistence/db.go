package persistence

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens (or creates) the sqlite history database and migrates
// the schema. Pass ":memory:" for an ephemeral database.
func OpenDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&AnalysisRunModel{}, &WareStatModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return db, nil
}
