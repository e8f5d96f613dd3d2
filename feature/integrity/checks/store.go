package checks

import (
	"context"
	"errors"

	"snapshot-manager/core/database"
	"snapshot-manager/feature/dataset/store"

	"gorm.io/gorm"
)

// Store status values.
const (
	StoreStatusOK              = "ok"
	StoreStatusNotBootstrapped = "not_bootstrapped"
	StoreStatusUnavailable     = "unavailable"
)

// StoreReport describes the health of the dataset store.
type StoreReport struct {
	// Status is ok, not_bootstrapped, or unavailable.
	Status string `json:"status"`

	// Error carries the failure detail for the unavailable status.
	Error string `json:"error,omitempty"`

	// MissingColumns lists expected observation columns absent from the
	// database schema (database driver only).
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// expectedColumns are the observation columns every backend must carry.
var expectedColumns = []string{"date", "value", "entity_key", "client", "warehouse", "product"}

// CheckStore probes the dataset store. A never-bootstrapped store is a
// distinct, expected condition; everything else that fails to load is
// reported as unavailable rather than being mistaken for a fresh start.
func CheckStore(ctx context.Context, st store.Store) *StoreReport {
	_, err := st.Load(ctx)
	if err == nil {
		return &StoreReport{Status: StoreStatusOK}
	}
	if errors.Is(err, store.ErrNotBootstrapped) {
		return &StoreReport{Status: StoreStatusNotBootstrapped}
	}
	return &StoreReport{Status: StoreStatusUnavailable, Error: err.Error()}
}

// CheckStoreSchema verifies the observations table columns for the
// database dataset driver. It is skipped (nil report) without a
// database connection.
func CheckStoreSchema(db *gorm.DB) (*StoreReport, error) {
	if db == nil {
		return nil, nil
	}

	columns, err := database.GetTableColumns(db, "observations")
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col.Field] = struct{}{}
	}

	report := &StoreReport{Status: StoreStatusOK, MissingColumns: []string{}}
	for _, col := range expectedColumns {
		if _, ok := present[col]; !ok {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}
	if len(report.MissingColumns) > 0 {
		report.Status = StoreStatusUnavailable
	}
	return report, nil
}
