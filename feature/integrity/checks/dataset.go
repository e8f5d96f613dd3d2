package checks

import (
	"fmt"

	"snapshot-manager/feature/dataset/models"
)

// DatasetReport captures invariant violations found in a persisted table.
type DatasetReport struct {
	// Records is the total number of observations inspected.
	Records int `json:"records"`

	// Duplicates lists (entity_key, date) pairs appearing more than once.
	Duplicates []string `json:"duplicates"`

	// Inversions counts adjacent record pairs out of canonical order.
	Inversions int `json:"inversions"`

	// NullValues counts records persisted without a measurement.
	NullValues int `json:"null_values"`

	// Summary carries the aggregate dataset statistics.
	Summary models.Summary `json:"summary"`
}

// OK reports whether both dataset invariants hold.
func (r *DatasetReport) OK() bool {
	return len(r.Duplicates) == 0 && r.Inversions == 0
}

// CheckDataset verifies the two dataset invariants in a single linear
// scan: uniqueness of (entity_key, date) pairs and canonical
// (entity_key, date) ordering.
func CheckDataset(table *models.Table) *DatasetReport {
	report := &DatasetReport{
		Records:    table.Len(),
		Duplicates: []string{},
		Summary:    table.Summarize(),
	}
	report.NullValues = report.Summary.NullValues

	seen := make(map[string]struct{}, table.Len())
	for i, rec := range table.Records {
		pair := fmt.Sprintf("%s@%s", rec.EntityKey, rec.Date.Format(models.DateLayout))
		if _, dup := seen[pair]; dup {
			report.Duplicates = append(report.Duplicates, pair)
		}
		seen[pair] = struct{}{}

		if i > 0 && rec.Less(table.Records[i-1]) {
			report.Inversions++
		}
	}
	return report
}
