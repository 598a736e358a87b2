package face

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	feature := NewFeature(nil, "", zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleExtract(t *testing.T) {
	app := setupTestApp()

	payload := `{"image_base64":"` + strings.Repeat("A", 1400) + `"}`
	req := httptest.NewRequest("POST", "/v1/face/extract", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.InDelta(t, 0.95, res.Quality, 1e-9)
	assert.Len(t, res.Regions, 9)
}

func TestHandleExtract_MissingImage(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("POST", "/v1/face/extract", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	feature := NewFeature(nil, "", zap.NewNop())
	assert.Equal(t, "face", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
