package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"snapshot-manager/feature/dataset/models"

	_ "modernc.org/sqlite"
)

const fileSchema = `
CREATE TABLE IF NOT EXISTS observations (
	date       TEXT NOT NULL,
	value      REAL,
	entity_key TEXT NOT NULL,
	client     TEXT NOT NULL,
	warehouse  TEXT NOT NULL,
	product    TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_observations_key_date
	ON observations (entity_key, date);
`

// FileStore persists the dataset in a single embedded SQLite file.
// Each operation opens and closes the file, matching the whole-file
// replace semantics of the merge cycle.
type FileStore struct {
	path string
}

// NewFileStore creates a file store rooted at the given path.
// The file is not created until Bootstrap runs.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %w", s.path, err)
	}

	// Single writer; WAL is unnecessary but busy_timeout guards against
	// a stray concurrent reader.
	pragmas := []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA synchronous=FULL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}
	return db, nil
}

// Bootstrap creates the dataset file and its schema. Running it against
// an existing dataset is a no-op.
func (s *FileStore) Bootstrap(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, fileSchema); err != nil {
		return fmt.Errorf("failed to create dataset schema: %w", err)
	}
	return nil
}

// Load reads the full dataset in canonical order. A missing file means
// Bootstrap never ran; any other failure is surfaced as-is so corruption
// is never masked as a fresh start.
func (s *FileStore) Load(ctx context.Context) (*models.Table, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotBootstrapped
		}
		return nil, fmt.Errorf("failed to stat dataset file %s: %w", s.path, err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if ok, err := s.hasSchema(ctx, db); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrNotBootstrapped
	}

	rows, err := db.QueryContext(ctx,
		`SELECT date, value, entity_key, client, warehouse, product
		 FROM observations ORDER BY entity_key, date`)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	defer rows.Close()

	table := models.NewTable()
	for rows.Next() {
		var (
			dateStr string
			value   sql.NullFloat64
			rec     models.Record
		)
		if err := rows.Scan(&dateStr, &value, &rec.EntityKey, &rec.Client, &rec.Warehouse, &rec.Product); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt observation date %q: %w", dateStr, err)
		}
		rec.Date = date
		if value.Valid {
			v := value.Float64
			rec.Value = &v
		}
		table.Append(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return table, nil
}

// Save replaces the persisted dataset with the given table inside a
// single transaction, so a failure mid-write leaves the prior dataset
// intact.
func (s *FileStore) Save(ctx context.Context, table *models.Table) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if ok, err := s.hasSchema(ctx, db); err != nil {
		return err
	} else if !ok {
		return ErrNotBootstrapped
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM observations`); err != nil {
		return fmt.Errorf("failed to clear observations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO observations (date, value, entity_key, client, warehouse, product)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range table.Records {
		var value sql.NullFloat64
		if rec.Value != nil {
			value = sql.NullFloat64{Float64: *rec.Value, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			rec.Date.Format(models.DateLayout), value,
			rec.EntityKey, rec.Client, rec.Warehouse, rec.Product); err != nil {
			return fmt.Errorf("failed to insert observation %s/%s: %w",
				rec.EntityKey, rec.Date.Format(models.DateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

func (s *FileStore) hasSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name='observations'`).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to inspect dataset schema: %w", err)
	}
	return true, nil
}
