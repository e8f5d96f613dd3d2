package checks

import (
	"context"

	"snapshot-manager/feature/snapshot"
)

// SourceReport describes the reachability of the raw snapshot source.
type SourceReport struct {
	// Status is ok or unavailable.
	Status string `json:"status"`

	// Candidates counts snapshots currently matching the prefix.
	Candidates int `json:"candidates"`

	// Error carries the failure detail for the unavailable status.
	Error string `json:"error,omitempty"`
}

// CheckSource verifies the raw snapshot source is listable.
func CheckSource(ctx context.Context, src snapshot.Source) *SourceReport {
	names, err := src.List(ctx)
	if err != nil {
		return &SourceReport{Status: "unavailable", Error: err.Error()}
	}
	return &SourceReport{Status: "ok", Candidates: len(names)}
}
