package store

import (
	"fmt"

	"gorm.io/gorm"
)

// New creates a dataset store for the configured driver. The database
// driver requires an established GORM connection; the other drivers
// ignore it.
func New(cfg Config, db *gorm.DB) (Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Path), nil
	case DriverDatabase:
		if db == nil {
			return nil, fmt.Errorf("dataset driver %q requires a database connection", cfg.Driver)
		}
		return NewDatabaseStore(db, cfg.BatchSize), nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown dataset driver %q", cfg.Driver)
	}
}
