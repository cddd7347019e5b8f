package catalog_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"floorops/core/database"
	"floorops/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	feature := catalog.NewFeature(db, zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandlerSizeRoundtrip(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/catalog/sizes", fiber.Map{"label": `12"x24"`})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/catalog/sizes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sizes []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sizes))
	require.Len(t, sizes, 1)
	assert.Equal(t, `12"x24"`, sizes[0]["label"])
}

func TestHandlerCreateSizeValidation(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/catalog/sizes", fiber.Map{"label": "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlerProductSearch(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/catalog/products", fiber.Map{"name": "Red Oak Plank"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = postJSON(t, app, "/catalog/products", fiber.Map{"name": "Maple Select"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/catalog/products/search?q=oak", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, []string{"Red Oak Plank"}, names)
}

func TestFeatureDisabledWithoutDatabase(t *testing.T) {
	feature := catalog.NewFeature(nil, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
