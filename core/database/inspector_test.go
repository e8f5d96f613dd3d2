package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec(`CREATE TABLE observations (
		date TEXT NOT NULL,
		value REAL,
		entity_key TEXT NOT NULL,
		client TEXT NOT NULL,
		warehouse TEXT NOT NULL,
		product TEXT NOT NULL
	)`).Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "observations")
	assert.NoError(t, err)
	assert.Len(t, columns, 6)

	fields := make(map[string]string)
	for _, col := range columns {
		fields[col.Field] = col.Type
	}
	assert.Equal(t, "text", fields["date"])
	assert.Equal(t, "real", fields["value"])
	assert.Contains(t, fields, "entity_key")

	t.Run("Missing Table", func(t *testing.T) {
		cols, err := GetTableColumns(db, "missing_table")
		// PRAGMA table_info returns no rows for unknown tables
		assert.NoError(t, err)
		assert.Empty(t, cols)
	})
}
