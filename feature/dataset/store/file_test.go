package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"snapshot-manager/core/utils"
	"snapshot-manager/feature/dataset/models"
	"snapshot-manager/feature/dataset/store"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTable() *models.Table {
	table := models.NewTable(
		models.Record{Date: date("2024-01-01"), Value: utils.Float64Ptr(10),
			EntityKey: "C1/W1/P1", Client: "C1", Warehouse: "W1", Product: "P1"},
		models.Record{Date: date("2024-01-02"), Value: nil,
			EntityKey: "C1/W1/P1", Client: "C1", Warehouse: "W1", Product: "P1"},
		models.Record{Date: date("2024-01-01"), Value: utils.Float64Ptr(5.5),
			EntityKey: "C2/W1/P2", Client: "C2", Warehouse: "W1", Product: "P2"},
	)
	table.Sort()
	return table
}

func TestFileStore_LoadBeforeBootstrap(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "sales.db"))

	_, err := st.Load(context.Background())
	assert.True(t, errors.Is(err, store.ErrNotBootstrapped))
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "data", "sales.db"))

	assert.NoError(t, st.Bootstrap(ctx))
	// Bootstrap is idempotent.
	assert.NoError(t, st.Bootstrap(ctx))

	table, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	assert.NoError(t, st.Save(ctx, sampleTable()))

	loaded, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
	assert.True(t, loaded.IsSorted())

	// Null value survives the round trip.
	assert.Nil(t, loaded.Records[1].Value)
	assert.Equal(t, 10.0, *loaded.Records[0].Value)
	assert.Equal(t, "C2/W1/P2", loaded.Records[2].EntityKey)
	assert.Equal(t, "C2", loaded.Records[2].Client)
}

func TestFileStore_SaveReplacesWholeTable(t *testing.T) {
	ctx := context.Background()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "sales.db"))
	assert.NoError(t, st.Bootstrap(ctx))
	assert.NoError(t, st.Save(ctx, sampleTable()))

	replacement := models.NewTable(
		models.Record{Date: date("2024-02-01"), Value: utils.Float64Ptr(1),
			EntityKey: "C9/W9/P9", Client: "C9", Warehouse: "W9", Product: "P9"},
	)
	assert.NoError(t, st.Save(ctx, replacement))

	loaded, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.Equal(t, "C9/W9/P9", loaded.Records[0].EntityKey)
}

func TestFileStore_SaveBeforeBootstrap(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "sales.db"))

	err := st.Save(context.Background(), sampleTable())
	assert.Error(t, err)
}
