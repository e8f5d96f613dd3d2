package integrity_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"snapshot-manager/feature/dataset/store"
	"snapshot-manager/feature/integrity"
	"snapshot-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticSource struct {
	names []string
	err   error
}

func (s staticSource) List(ctx context.Context) ([]string, error) { return s.names, s.err }
func (s staticSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func newTestApp(t *testing.T, src staticSource, st store.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := integrity.NewFeature(src, st, nil, zap.NewNop())
	assert.NoError(t, feature.Load(app))
	return app
}

func TestHandleIntegrityCheck(t *testing.T) {
	st := store.NewMemoryStore()
	assert.NoError(t, st.Bootstrap(context.Background()))
	app := newTestApp(t, staticSource{names: []string{"sales_w1.csv"}}, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report map[string]json.RawMessage
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &report))
	assert.Contains(t, report, "store")
	assert.Contains(t, report, "dataset")
	assert.Contains(t, report, "source")
}

func TestHandleDatasetCheck(t *testing.T) {
	st := store.NewMemoryStore()
	assert.NoError(t, st.Bootstrap(context.Background()))
	app := newTestApp(t, staticSource{}, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/dataset", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report checks.DatasetReport
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &report))
	assert.True(t, report.OK())
}

func TestHandleDatasetCheck_NotBootstrapped(t *testing.T) {
	app := newTestApp(t, staticSource{}, store.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/dataset", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandleStoreCheck(t *testing.T) {
	app := newTestApp(t, staticSource{}, store.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/store", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report checks.StoreReport
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, checks.StoreStatusNotBootstrapped, report.Status)
}

func TestHandleSourceCheck(t *testing.T) {
	st := store.NewMemoryStore()
	app := newTestApp(t, staticSource{err: errors.New("bucket offline")}, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/source", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report checks.SourceReport
	body, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "unavailable", report.Status)
}

func TestFeatureMetadata(t *testing.T) {
	f := integrity.NewFeature(staticSource{}, store.NewMemoryStore(), nil, zap.NewNop())
	assert.Equal(t, "integrity", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())
}
