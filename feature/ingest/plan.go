package ingest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"snapshot-manager/feature/dataset/models"
	"snapshot-manager/feature/snapshot"

	"go.uber.org/zap"
)

// PlannedFile describes what merging one candidate snapshot would do.
type PlannedFile struct {
	// Name is the snapshot identifier.
	Name string `json:"name"`

	// Outcome is merged or all_overlapping.
	Outcome Outcome `json:"outcome"`

	// NewDates lists the ISO dates the snapshot would contribute, in
	// chronological order.
	NewDates []string `json:"new_dates"`

	// OverlappingDates counts the snapshot dates already covered, either
	// by the stored dataset or by an earlier candidate in the run.
	OverlappingDates int `json:"overlapping_dates"`
}

// Plan previews an ingestion run without writing.
type Plan struct {
	// StoredDates is the size of the current global date horizon.
	StoredDates int `json:"stored_dates"`

	// Files holds per-candidate previews in ingestion order.
	Files []PlannedFile `json:"files"`

	// Failed holds per-file errors encountered while reading candidates.
	Failed []FileError `json:"failed"`
}

// PlanAll simulates a full ingestion run against the current dataset.
// Candidates are walked in ingestion order and each one's new dates are
// added to the simulated horizon, so the preview reproduces the
// first-write-wins outcome of a real run. The dataset is never written.
func (s *Service) PlanAll(ctx context.Context) (*Plan, error) {
	names, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	existing, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	horizon := existing.DateSet()
	plan := &Plan{
		StoredDates: len(horizon),
		Files:       []PlannedFile{},
		Failed:      []FileError{},
	}

	for _, name := range names {
		planned, err := s.planFile(ctx, name, horizon)
		if err != nil {
			s.logger.Warn("Snapshot could not be planned",
				zap.String("file", name),
				zap.Error(err))
			plan.Failed = append(plan.Failed, FileError{Name: name, Error: err.Error()})
			continue
		}
		plan.Files = append(plan.Files, *planned)
	}
	return plan, nil
}

// planFile previews one candidate and folds its new dates into the
// simulated horizon.
func (s *Service) planFile(ctx context.Context, name string, horizon map[time.Time]struct{}) (*PlannedFile, error) {
	rc, err := s.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	snap, err := snapshot.DecodeCSV(name, rc)
	if err != nil {
		return nil, err
	}

	dates, err := snap.ParseDates()
	if err != nil {
		return nil, err
	}

	planned := &PlannedFile{Name: name, NewDates: []string{}}
	for _, date := range dates {
		if _, covered := horizon[date]; covered {
			planned.OverlappingDates++
			continue
		}
		horizon[date] = struct{}{}
		planned.NewDates = append(planned.NewDates, date.Format(models.DateLayout))
	}
	// Lexicographic order is chronological for ISO dates.
	sort.Strings(planned.NewDates)

	planned.Outcome = OutcomeMerged
	if len(planned.NewDates) == 0 {
		planned.Outcome = OutcomeAllOverlapping
	}
	return planned, nil
}
