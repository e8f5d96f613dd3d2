// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (or embedded
// SQLite) connections based on the application's configuration. The
// connection backs the optional database dataset store driver.
//
// # Connect
//
// The generic Connect function establishes a connection for the
// configured driver. It is agnostic to the dataset schema; the schema
// itself is owned by feature/dataset.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// store integrity check to verify the observations table columns match
// the expected dataset model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "observations")
package database
