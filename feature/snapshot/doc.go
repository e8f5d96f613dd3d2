// Package snapshot handles incoming wide-format snapshot files.
//
// A snapshot is one source CSV with one row per Client/Warehouse/Product
// entity and one column per ISO date. The package covers everything up
// to the merge decision, but not the decision itself:
//
//   - Source: discovery of candidate files by prefix and extension, from
//     a local directory (fs) or an object-storage bucket.
//   - DecodeCSV: parsing a raw CSV into the wide Snapshot model.
//   - Normalize: the pure reshape from wide to the canonical long layout,
//     deriving the composite entity key and sorting by (entity_key, date).
//
// Contract violations carry typed errors: SchemaError for a
// non-identifier column that is not a date, MissingIdentifierError for
// absent Client/Warehouse/Product columns.
package snapshot
