package snapshot

import (
	"time"

	"snapshot-manager/feature/dataset/models"
)

// Identifier column names every snapshot must carry.
const (
	ColumnClient    = "Client"
	ColumnWarehouse = "Warehouse"
	ColumnProduct   = "Product"
)

// IdentifierColumns lists the categorical columns in canonical order.
// Every other column of a snapshot is a date column.
var IdentifierColumns = []string{ColumnClient, ColumnWarehouse, ColumnProduct}

// Row is one wide-format snapshot row: one entity with its observations
// for every date column. Values is aligned with Snapshot.DateColumns;
// a nil entry means the snapshot reported no measurement for that cell.
type Row struct {
	Client    string
	Warehouse string
	Product   string
	Values    []*float64
}

// Snapshot is one incoming wide-format source table: one row per entity,
// one column per observation date.
type Snapshot struct {
	// Name is the opaque source identifier (e.g. the file name).
	Name string

	// DateColumns holds the raw date column names in file order.
	DateColumns []string

	// Rows holds one entry per entity.
	Rows []Row
}

// ParseDates parses every date column name. Any failure is a
// SchemaError; the caller must not write anything after one.
func (s *Snapshot) ParseDates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(s.DateColumns))
	for _, col := range s.DateColumns {
		date, err := models.ParseDate(col)
		if err != nil {
			return nil, &SchemaError{File: s.Name, Column: col, Err: err}
		}
		dates = append(dates, date)
	}
	return dates, nil
}
