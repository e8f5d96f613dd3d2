package store_test

import (
	"context"
	"errors"
	"testing"

	"snapshot-manager/core/database"
	"snapshot-manager/core/utils"
	"snapshot-manager/feature/dataset/models"
	"snapshot-manager/feature/dataset/store"

	"github.com/stretchr/testify/assert"
)

func newTestDB(t *testing.T) *store.DatabaseStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	return store.NewDatabaseStore(db, 100)
}

func TestDatabaseStore_LoadBeforeBootstrap(t *testing.T) {
	st := newTestDB(t)

	_, err := st.Load(context.Background())
	assert.True(t, errors.Is(err, store.ErrNotBootstrapped))

	err = st.Save(context.Background(), sampleTable())
	assert.True(t, errors.Is(err, store.ErrNotBootstrapped))
}

func TestDatabaseStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestDB(t)

	assert.NoError(t, st.Bootstrap(ctx))
	assert.NoError(t, st.Bootstrap(ctx))

	table, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	assert.NoError(t, st.Save(ctx, sampleTable()))

	loaded, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
	assert.True(t, loaded.IsSorted())
	assert.Nil(t, loaded.Records[1].Value)
	assert.Equal(t, 10.0, *loaded.Records[0].Value)
}

func TestDatabaseStore_SaveReplacesWholeTable(t *testing.T) {
	ctx := context.Background()
	st := newTestDB(t)
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

	// Saving an empty table empties the store without dropping the schema.
	assert.NoError(t, st.Save(ctx, models.NewTable()))
	loaded, err = st.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestStoreFactory(t *testing.T) {
	st, err := store.New(store.Config{Driver: "memory"}, nil)
	assert.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)

	st, err = store.New(store.Config{Driver: "file", Path: "x.db"}, nil)
	assert.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, st)

	_, err = store.New(store.Config{Driver: "database"}, nil)
	assert.Error(t, err)

	_, err = store.New(store.Config{Driver: "parquet"}, nil)
	assert.Error(t, err)
}
