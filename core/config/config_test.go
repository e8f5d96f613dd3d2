package config_test

import (
	"testing"

	"snapshot-manager/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "fs", cfg.Source.Driver)
	assert.Equal(t, "data/raw", cfg.Source.Dir)
	assert.Equal(t, "sales", cfg.Source.Prefix)
	assert.Equal(t, "file", cfg.Dataset.Driver)
	assert.Equal(t, "data/preprocessed/sales.db", cfg.Dataset.Path)
	assert.Equal(t, "snapshots", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SOURCE_PREFIX", "inventory")
	t.Setenv("DATASET_DRIVER", "memory")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "inventory", cfg.Source.Prefix)
	assert.Equal(t, "memory", cfg.Dataset.Driver)
	assert.Equal(t, "9999", cfg.Server.Port)
}
