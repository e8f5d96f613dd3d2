package store

import (
	"context"
	"fmt"

	"snapshot-manager/feature/dataset/models"

	"gorm.io/gorm"
)

// DatabaseStore persists the dataset in a relational observations table
// through GORM. Save replaces all rows inside one transaction.
type DatabaseStore struct {
	db        *gorm.DB
	batchSize int
}

// NewDatabaseStore creates a database-backed store.
func NewDatabaseStore(db *gorm.DB, batchSize int) *DatabaseStore {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &DatabaseStore{db: db, batchSize: batchSize}
}

// Bootstrap creates the observations table. Idempotent via AutoMigrate.
func (s *DatabaseStore) Bootstrap(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.ObservationRow{}); err != nil {
		return fmt.Errorf("failed to migrate observations table: %w", err)
	}
	return nil
}

// Load reads the full dataset in canonical order.
func (s *DatabaseStore) Load(ctx context.Context) (*models.Table, error) {
	if !s.db.WithContext(ctx).Migrator().HasTable(&models.ObservationRow{}) {
		return nil, ErrNotBootstrapped
	}

	var rows []models.ObservationRow
	err := s.db.WithContext(ctx).
		Order("entity_key, date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	table := models.NewTable()
	for _, row := range rows {
		rec, err := row.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("corrupt observation row %d: %w", row.ID, err)
		}
		table.Append(rec)
	}
	return table, nil
}

// Save replaces the observations table content with the given dataset.
func (s *DatabaseStore) Save(ctx context.Context, table *models.Table) error {
	if !s.db.WithContext(ctx).Migrator().HasTable(&models.ObservationRow{}) {
		return ErrNotBootstrapped
	}

	rows := make([]models.ObservationRow, 0, table.Len())
	for _, rec := range table.Records {
		rows = append(rows, models.NewObservationRow(rec))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM observations").Error; err != nil {
			return fmt.Errorf("failed to clear observations: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, s.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert observations: %w", err)
		}
		return nil
	})
}
