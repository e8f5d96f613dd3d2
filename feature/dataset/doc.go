// Package dataset defines the canonical long-format observations dataset
// and its persistence backends.
//
// The dataset holds one record per (entity_key, date) observation. Two
// invariants hold for every persisted copy:
//
//   - Uniqueness: no two records share the same (entity_key, date) pair.
//   - Ordering: records are sorted by entity_key (lexicographic), then
//     by date (chronological).
//
// # Layout
//
//   - models: the Record/Table domain types and the GORM row mapping.
//   - store: the Store interface (Bootstrap/Load/Save with whole-table
//     replace semantics) and its file, database, and memory backends.
//
// The dataset is the sole durable state of the application. Stores never
// perform partial updates; every Save replaces the previous table.
package dataset
