package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"snapshot-manager/feature/dataset/models"
	"snapshot-manager/feature/dataset/store"
	"snapshot-manager/feature/snapshot"

	"go.uber.org/zap"
)

// Outcome classifies the result of merging a single snapshot.
type Outcome string

const (
	// OutcomeMerged means the snapshot contributed new dates.
	OutcomeMerged Outcome = "merged"
	// OutcomeAllOverlapping means every snapshot date was already
	// stored; the dataset was left untouched.
	OutcomeAllOverlapping Outcome = "all_overlapping"
)

// FileResult describes the merge outcome for one snapshot.
type FileResult struct {
	// Name is the snapshot identifier.
	Name string `json:"name"`

	// Outcome is merged or all_overlapping.
	Outcome Outcome `json:"outcome"`

	// NewDates counts the snapshot dates not previously stored.
	NewDates int `json:"new_dates"`

	// NewRecords counts the observations appended for those dates.
	NewRecords int `json:"new_records"`

	// TotalRecords is the dataset size after the merge.
	TotalRecords int `json:"total_records"`
}

// FileError records a per-file failure inside a batch run.
type FileError struct {
	// Name is the snapshot identifier.
	Name string `json:"name"`

	// Error is the failure description.
	Error string `json:"error"`
}

// Report aggregates a batch ingestion run.
type Report struct {
	// Processed counts all candidate snapshots attempted.
	Processed int `json:"processed"`

	// Merged counts snapshots that contributed new dates.
	Merged int `json:"merged"`

	// Overlapping counts snapshots skipped by the overlap short-circuit.
	Overlapping int `json:"overlapping"`

	// Files holds per-file results for successful merges and skips.
	Files []FileResult `json:"files"`

	// Failed holds per-file errors. A failure never aborts the batch.
	Failed []FileError `json:"failed"`

	// ExecutionTime is the wall-clock duration of the run.
	ExecutionTime string `json:"execution_time"`
}

// Service owns the incremental merge cycle: it reads candidate wide
// snapshots from the source and folds their genuinely new dates into the
// persisted long-format dataset.
//
// The read-modify-write cycle against the store is a critical section;
// the service assumes a single writer and must not be invoked
// concurrently against the same store.
type Service struct {
	source snapshot.Source
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new ingest service.
func NewService(source snapshot.Source, st store.Store, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		store:  st,
		logger: logger,
	}
}

// ProcessAll lists candidate snapshots and merges them in order. The
// list order is the ingestion order, so earlier files win overlapping
// dates. A failing file is logged and recorded in the report; the run
// continues with the next candidate.
func (s *Service) ProcessAll(ctx context.Context) (*Report, error) {
	startTime := time.Now()

	names, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	report := &Report{
		Files:  []FileResult{},
		Failed: []FileError{},
	}

	for _, name := range names {
		s.logger.Info("Processing snapshot", zap.String("file", name))
		report.Processed++

		result, err := s.MergeFile(ctx, name)
		if err != nil {
			s.logger.Error("Snapshot merge failed",
				zap.String("file", name),
				zap.Error(err))
			report.Failed = append(report.Failed, FileError{Name: name, Error: err.Error()})
			continue
		}

		report.Files = append(report.Files, *result)
		switch result.Outcome {
		case OutcomeMerged:
			report.Merged++
		case OutcomeAllOverlapping:
			report.Overlapping++
		}
	}

	report.ExecutionTime = time.Since(startTime).String()
	s.logger.Info("Ingestion run completed",
		zap.Int("processed", report.Processed),
		zap.Int("merged", report.Merged),
		zap.Int("overlapping", report.Overlapping),
		zap.Int("failed", len(report.Failed)),
		zap.String("execution_time", report.ExecutionTime))
	return report, nil
}

// MergeFile merges a single snapshot into the persisted dataset.
//
// The snapshot's date columns are validated before the dataset is
// touched, so a SchemaError can never leave a partial write behind.
// Dates already stored anywhere in the dataset are excluded globally
// (first-write-wins per date, not per entity). When every date overlaps
// the merge is a reported no-op and no write occurs.
func (s *Service) MergeFile(ctx context.Context, name string) (*FileResult, error) {
	rc, err := s.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	snap, err := snapshot.DecodeCSV(name, rc)
	if err != nil {
		return nil, err
	}

	// Validate the schema up front; aborts before any write.
	snapshotDates, err := snap.ParseDates()
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotBootstrapped) {
			return nil, fmt.Errorf("%w (run bootstrap first)", err)
		}
		return nil, err
	}

	// Set difference against the global date horizon; duplicate date
	// columns collapse.
	existingDates := existing.DateSet()
	newDates := make(map[time.Time]struct{})
	for _, date := range snapshotDates {
		if _, seen := existingDates[date]; !seen {
			newDates[date] = struct{}{}
		}
	}

	if len(newDates) == 0 {
		s.logger.Info("All dates are overlapping", zap.String("file", name))
		return &FileResult{
			Name:         name,
			Outcome:      OutcomeAllOverlapping,
			TotalRecords: existing.Len(),
		}, nil
	}

	long, err := snapshot.Normalize(snap)
	if err != nil {
		return nil, err
	}

	appended := 0
	for _, rec := range long.Records {
		if _, ok := newDates[rec.Date]; ok {
			existing.Append(rec)
			appended++
		}
	}

	existing.Sort()
	if err := s.store.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to persist dataset: %w", err)
	}

	s.logger.Info("Snapshot merged successfully",
		zap.String("file", name),
		zap.Int("new_dates", len(newDates)),
		zap.Int("new_records", appended),
		zap.Int("total_records", existing.Len()))

	return &FileResult{
		Name:         name,
		Outcome:      OutcomeMerged,
		NewDates:     len(newDates),
		NewRecords:   appended,
		TotalRecords: existing.Len(),
	}, nil
}

// Summary loads the persisted dataset and returns aggregate statistics.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return table.Summarize(), nil
}

// Records loads the persisted dataset and returns the records for one
// entity key, capped at limit when limit is positive.
func (s *Service) Records(ctx context.Context, entityKey string, limit int) ([]models.Record, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := []models.Record{}
	for _, rec := range table.Records {
		if entityKey != "" && rec.EntityKey != entityKey {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}

// Upload stores a new raw snapshot through the source, when the source
// supports uploads.
func (s *Service) Upload(ctx context.Context, name string, data []byte) error {
	uploader, ok := s.source.(snapshot.Uploader)
	if !ok {
		return fmt.Errorf("snapshot source does not accept uploads")
	}
	return uploader.Put(ctx, name, bytes.NewReader(data), int64(len(data)))
}
