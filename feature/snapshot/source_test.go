package snapshot_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snapshot-manager/core/storage/mocks"
	"snapshot-manager/feature/snapshot"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFSSource_List(t *testing.T) {
	dir := t.TempDir()
	files := []string{"sales_w2.csv", "sales_w1.csv", "inventory.csv", "sales_notes.txt"}
	for _, name := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte("Client,Warehouse,Product\n"), 0644)
		assert.NoError(t, err)
	}
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "sales_archive.csv.d"), 0755))

	src := snapshot.NewFSSource(dir, "sales")

	names, err := src.List(context.Background())
	assert.NoError(t, err)

	// Prefix and extension filtered, lexicographic order.
	assert.Equal(t, []string{"sales_w1.csv", "sales_w2.csv"}, names)
}

func TestFSSource_ListMissingDir(t *testing.T) {
	src := snapshot.NewFSSource(filepath.Join(t.TempDir(), "missing"), "sales")

	_, err := src.List(context.Background())
	assert.Error(t, err)
}

func TestFSSource_OpenAndPut(t *testing.T) {
	dir := t.TempDir()
	src := snapshot.NewFSSource(filepath.Join(dir, "raw"), "sales")

	body := "Client,Warehouse,Product,2024-01-01\nC1,W1,P1,1\n"
	err := src.Put(context.Background(), "sales_w1.csv", strings.NewReader(body), int64(len(body)))
	assert.NoError(t, err)

	rc, err := src.Open(context.Background(), "sales_w1.csv")
	assert.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestBucketSource_List(t *testing.T) {
	client := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "raw/sales_w2.csv"}
	ch <- minio.ObjectInfo{Key: "raw/sales_w1.csv"}
	ch <- minio.ObjectInfo{Key: "raw/sales_readme.md"}
	close(ch)

	client.On("ListObjects", mock.Anything, "snapshots", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "raw/sales"
	})).Return((<-chan minio.ObjectInfo)(ch))

	src := snapshot.NewBucketSource(client, "snapshots", "raw", "sales")

	names, err := src.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"sales_w1.csv", "sales_w2.csv"}, names)
	client.AssertExpectations(t)
}

func TestBucketSource_ListError(t *testing.T) {
	client := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	client.On("ListObjects", mock.Anything, "snapshots", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	src := snapshot.NewBucketSource(client, "snapshots", "raw", "sales")

	_, err := src.List(context.Background())
	assert.Error(t, err)
}

func TestBucketSource_Open(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(strings.NewReader("Client,Warehouse,Product\n"))

	client.On("GetObject", mock.Anything, "snapshots", "raw/sales_w1.csv", mock.Anything).
		Return(body, nil)

	src := snapshot.NewBucketSource(client, "snapshots", "raw", "sales")

	rc, err := src.Open(context.Background(), "sales_w1.csv")
	assert.NoError(t, err)
	defer rc.Close()
	client.AssertExpectations(t)
}

func TestBucketSource_Put(t *testing.T) {
	client := new(mocks.Client)

	client.On("PutObject", mock.Anything, "snapshots", "raw/sales_w3.csv",
		mock.Anything, int64(10), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "text/csv"
		})).Return(minio.UploadInfo{}, nil)

	src := snapshot.NewBucketSource(client, "snapshots", "raw", "sales")

	err := src.Put(context.Background(), "sales_w3.csv", bytes.NewReader(make([]byte, 10)), 10)
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestNewSource(t *testing.T) {
	src, err := snapshot.NewSource(snapshot.SourceConfig{Driver: "fs", Dir: t.TempDir(), Prefix: "sales"}, nil, "")
	assert.NoError(t, err)
	assert.IsType(t, &snapshot.FSSource{}, src)

	_, err = snapshot.NewSource(snapshot.SourceConfig{Driver: "bucket"}, nil, "snapshots")
	assert.Error(t, err)

	src, err = snapshot.NewSource(snapshot.SourceConfig{Driver: "bucket"}, new(mocks.Client), "snapshots")
	assert.NoError(t, err)
	assert.IsType(t, &snapshot.BucketSource{}, src)

	_, err = snapshot.NewSource(snapshot.SourceConfig{Driver: "tape"}, nil, "")
	assert.Error(t, err)
}
