// Package integrity verifies the invariants the merge pipeline promises:
// every (entity_key, date) pair appears at most once, the persisted
// dataset is in canonical (entity_key, date) order, the dataset store is
// reachable and bootstrapped, and the raw snapshot source is listable.
//
// Checks are read-only. The feature never repairs a violated invariant;
// it reports so an operator can re-run ingestion from the raw snapshots.
package integrity
