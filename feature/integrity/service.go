package integrity

import (
	"context"
	"errors"

	"snapshot-manager/feature/dataset/store"
	"snapshot-manager/feature/integrity/checks"
	"snapshot-manager/feature/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks over the dataset, its store, and the
// raw snapshot source.
type Service struct {
	source snapshot.Source
	store  store.Store
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when the
// database dataset driver is not in use.
func NewService(source snapshot.Source, st store.Store, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		store:  st,
		db:     db,
		logger: logger,
	}
}

// CheckDataset loads the persisted dataset and verifies the uniqueness
// and ordering invariants.
func (s *Service) CheckDataset(ctx context.Context) (*checks.DatasetReport, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckDataset(table), nil
}

// CheckStore probes store health, including the database schema when a
// connection is configured.
func (s *Service) CheckStore(ctx context.Context) (*checks.StoreReport, error) {
	report := checks.CheckStore(ctx, s.store)
	if report.Status != checks.StoreStatusOK {
		return report, nil
	}

	schemaReport, err := checks.CheckStoreSchema(s.db)
	if err != nil {
		return nil, err
	}
	if schemaReport != nil && schemaReport.Status != checks.StoreStatusOK {
		return schemaReport, nil
	}
	return report, nil
}

// CheckSource verifies the raw snapshot source is reachable.
func (s *Service) CheckSource(ctx context.Context) *checks.SourceReport {
	return checks.CheckSource(ctx, s.source)
}

// NotBootstrapped reports whether an error is the expected first-run
// condition rather than a failure.
func NotBootstrapped(err error) bool {
	return errors.Is(err, store.ErrNotBootstrapped)
}
