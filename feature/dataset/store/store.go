package store

import (
	"context"
	"errors"

	"snapshot-manager/feature/dataset/models"
)

// ErrNotBootstrapped is returned by Load when the store was never
// initialized. First run is deliberately distinguished from corruption:
// an unreadable store surfaces the underlying driver error instead of
// being silently treated as empty.
var ErrNotBootstrapped = errors.New("dataset store is not bootstrapped")

// Store persists the canonical long-format dataset.
//
// Save replaces the previous table wholesale; there are no partial
// updates. The read-modify-write cycle around a Store is a critical
// section and must be serialized by the caller (single writer).
type Store interface {
	// Bootstrap initializes an empty dataset. It is idempotent.
	Bootstrap(ctx context.Context) error

	// Load reads the full current dataset. It returns ErrNotBootstrapped
	// when Bootstrap has never run against this store.
	Load(ctx context.Context) (*models.Table, error)

	// Save replaces the persisted dataset with the given table.
	Save(ctx context.Context, table *models.Table) error
}
