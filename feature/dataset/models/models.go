package models

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date format used across snapshots and the
// persisted dataset (ISO 8601, no time component).
const DateLayout = "2006-01-02"

// KeySeparator joins the categorical attributes into an entity key.
const KeySeparator = "/"

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// BuildEntityKey derives the composite entity key for one
// (client, warehouse, product) combination. The same triple always
// produces the identical key string.
func BuildEntityKey(client, warehouse, product string) string {
	return client + KeySeparator + warehouse + KeySeparator + product
}

// Record is one long-format observation: a single (entity, date) value.
// Value may be nil when the snapshot reported no measurement for that cell.
type Record struct {
	// Date is the observation date (midnight UTC, no time component).
	Date time.Time `json:"date"`

	// Value is the measurement. Nil values are persisted as explicit
	// null records rather than dropped.
	Value *float64 `json:"value"`

	// EntityKey is the composite client/warehouse/product key.
	EntityKey string `json:"entity_key"`

	// Client, Warehouse and Product are kept denormalized for query
	// convenience.
	Client    string `json:"client"`
	Warehouse string `json:"warehouse"`
	Product   string `json:"product"`
}

// Less orders records by (entity_key, date), the canonical dataset order.
func (r Record) Less(other Record) bool {
	if r.EntityKey != other.EntityKey {
		return r.EntityKey < other.EntityKey
	}
	return r.Date.Before(other.Date)
}

// Table is the full long-format dataset held in memory during a merge
// cycle. The persisted copy is always a sorted Table.
type Table struct {
	Records []Record
}

// NewTable creates a table from the given records without sorting them.
func NewTable(records ...Record) *Table {
	return &Table{Records: records}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Append adds records to the table. Ordering is not maintained; callers
// must Sort before persisting.
func (t *Table) Append(records ...Record) {
	t.Records = append(t.Records, records...)
}

// Sort re-establishes the canonical (entity_key, date) order.
func (t *Table) Sort() {
	sort.Slice(t.Records, func(i, j int) bool {
		return t.Records[i].Less(t.Records[j])
	})
}

// IsSorted reports whether the table is in canonical order.
func (t *Table) IsSorted() bool {
	return sort.SliceIsSorted(t.Records, func(i, j int) bool {
		return t.Records[i].Less(t.Records[j])
	})
}

// DateSet returns the distinct observation dates present anywhere in the
// table. This is the global date horizon used for overlap detection.
func (t *Table) DateSet() map[time.Time]struct{} {
	set := make(map[time.Time]struct{})
	for _, r := range t.Records {
		set[r.Date] = struct{}{}
	}
	return set
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	records := make([]Record, len(t.Records))
	copy(records, t.Records)
	return &Table{Records: records}
}

// Summary aggregates dataset statistics for status reporting.
type Summary struct {
	// Records is the total number of observations.
	Records int `json:"records"`

	// Entities is the number of distinct entity keys.
	Entities int `json:"entities"`

	// Dates is the number of distinct observation dates.
	Dates int `json:"dates"`

	// FirstDate and LastDate bound the covered date range (ISO dates,
	// empty when the dataset is empty).
	FirstDate string `json:"first_date"`
	LastDate  string `json:"last_date"`

	// NullValues counts records persisted without a measurement.
	NullValues int `json:"null_values"`
}

// Summarize computes aggregate statistics over the table.
func (t *Table) Summarize() Summary {
	s := Summary{Records: len(t.Records)}

	entities := make(map[string]struct{})
	var first, last time.Time
	dates := make(map[time.Time]struct{})

	for _, r := range t.Records {
		entities[r.EntityKey] = struct{}{}
		dates[r.Date] = struct{}{}
		if r.Value == nil {
			s.NullValues++
		}
		if first.IsZero() || r.Date.Before(first) {
			first = r.Date
		}
		if last.IsZero() || r.Date.After(last) {
			last = r.Date
		}
	}

	s.Entities = len(entities)
	s.Dates = len(dates)
	if !first.IsZero() {
		s.FirstDate = first.Format(DateLayout)
		s.LastDate = last.Format(DateLayout)
	}
	return s
}
