package cmd

import (
	"fmt"

	"snapshot-manager/core/config"
	"snapshot-manager/core/database"
	"snapshot-manager/core/logger"
	"snapshot-manager/core/storage"
	"snapshot-manager/feature/dataset/store"
	"snapshot-manager/feature/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles the wiring every command needs: configuration, logger,
// snapshot source, dataset store, and the optional database connection.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	source snapshot.Source
	store  store.Store
}

// buildDeps loads configuration and constructs the source and store for
// the configured drivers. The database is only connected when the
// dataset store requires it; the storage client is only created when the
// snapshot source lives in a bucket.
func buildDeps() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Dataset.IsValidDriver() {
		return nil, fmt.Errorf("unknown dataset driver %q", cfg.Dataset.Driver)
	}

	var db *gorm.DB
	if cfg.Dataset.Driver == store.DriverDatabase {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("dataset driver %q requires a database: %w", cfg.Dataset.Driver, err)
		}
		db = conn
		logg.Info("Connected to dataset database", zap.String("driver", cfg.Database.Driver))
	}

	var client storage.Client
	if cfg.Source.Driver == snapshot.SourceDriverBucket {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	source, err := snapshot.NewSource(cfg.Source, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.Dataset, db)
	if err != nil {
		return nil, err
	}

	return &deps{
		cfg:    cfg,
		logger: logg,
		db:     db,
		source: source,
		store:  st,
	}, nil
}
