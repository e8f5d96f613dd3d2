package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"snapshot-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Extension is the tabular-text extension candidate snapshots must carry.
const Extension = ".csv"

// Source supplies candidate raw snapshots. Names are opaque identifiers;
// the merge engine only lists and opens them.
type Source interface {
	// List returns candidate snapshot names matching the configured
	// prefix, in lexicographic order. That order is the ingestion order
	// and therefore decides first-write-wins between overlapping files.
	List(ctx context.Context) ([]string, error)

	// Open streams the raw snapshot with the given name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Uploader is implemented by sources that accept new raw snapshots.
type Uploader interface {
	// Put stores a raw snapshot under the given name.
	Put(ctx context.Context, name string, r io.Reader, size int64) error
}

// SourceConfig holds configuration for snapshot discovery.
type SourceConfig struct {
	// Driver selects the backend (fs, bucket).
	Driver string `mapstructure:"driver" default:"fs"`
	// Dir is the raw-data directory (fs) or object key prefix (bucket).
	Dir string `mapstructure:"dir" default:"data/raw"`
	// Prefix is the file-name prefix candidate snapshots must match.
	Prefix string `mapstructure:"prefix" default:"sales"`
}

const (
	SourceDriverFS     = "fs"
	SourceDriverBucket = "bucket"
)

// NewSource creates a snapshot source for the configured driver. The
// bucket driver requires a storage client; the fs driver ignores it.
func NewSource(cfg SourceConfig, client storage.Client, bucket string) (Source, error) {
	switch cfg.Driver {
	case SourceDriverFS:
		return NewFSSource(cfg.Dir, cfg.Prefix), nil
	case SourceDriverBucket:
		if client == nil {
			return nil, fmt.Errorf("source driver %q requires a storage client", cfg.Driver)
		}
		return NewBucketSource(client, bucket, cfg.Dir, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}

// FSSource lists raw snapshot files from a local directory.
type FSSource struct {
	dir    string
	prefix string
}

// NewFSSource creates a filesystem source.
func NewFSSource(dir, prefix string) *FSSource {
	return &FSSource{dir: dir, prefix: prefix}
}

// List returns the file names under the raw directory that match the
// prefix and the .csv extension.
func (s *FSSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, s.prefix) && strings.HasSuffix(name, Extension) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Open opens a raw snapshot file by name.
func (s *FSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", name, err)
	}
	return f, nil
}

// Put writes a raw snapshot file into the raw directory.
func (s *FSSource) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create raw directory %s: %w", s.dir, err)
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	return nil
}

// BucketSource lists raw snapshot objects from object storage.
type BucketSource struct {
	client storage.Client
	bucket string
	dir    string
	prefix string
}

// NewBucketSource creates an object-storage source rooted at dir within
// the bucket.
func NewBucketSource(client storage.Client, bucket, dir, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, dir: dir, prefix: prefix}
}

// List returns object base names under the configured key prefix that
// match the snapshot prefix and extension.
func (s *BucketSource) List(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    s.objectKey(s.prefix),
		Recursive: false,
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		name := path.Base(obj.Key)
		if strings.HasSuffix(name, Extension) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Open streams a raw snapshot object by base name.
func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", name, err)
	}
	return obj, nil
}

// Put uploads a raw snapshot object.
func (s *BucketSource) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectKey(name), r, size, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return nil
}

func (s *BucketSource) objectKey(name string) string {
	if s.dir == "" {
		return name
	}
	return path.Join(s.dir, name)
}
