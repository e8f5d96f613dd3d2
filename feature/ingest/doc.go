// Package ingest implements the incremental merge engine.
//
// The engine folds wide-format snapshot files into the persisted
// long-format dataset, one file at a time:
//
//  1. Decode the raw CSV and validate its schema (identifier columns
//     present, every other column name an ISO date). Validation happens
//     before the dataset is read, so a schema violation can never leave
//     a partial write behind.
//  2. Diff the snapshot's dates against the dates already stored
//     anywhere in the dataset. The horizon is global, not per-entity:
//     once a date is stored for anyone it is never merged again, which
//     makes ingestion idempotent and first-write-wins per date.
//  3. If no new dates remain, report the overlap and stop without
//     writing.
//  4. Otherwise reshape to long form, keep only rows on new dates,
//     append to the existing table, re-sort by (entity_key, date), and
//     replace the persisted dataset wholesale.
//
// Batch runs (ProcessAll) isolate per-file failures: a malformed
// snapshot is logged and reported while the run continues. PlanAll
// simulates a run without writing, reproducing the first-write-wins
// outcome between candidates.
//
// # HTTP Endpoints
//
//   - POST /ingest/run : Runs a full ingestion batch.
//   - GET /ingest/plan : Previews a batch without writing.
//   - PUT /ingest/snapshots/:name : Stores a new raw snapshot.
//   - GET /dataset/summary : Aggregate dataset statistics.
//   - GET /dataset/records : Observations, filterable by entity key.
package ingest
