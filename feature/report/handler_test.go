package report

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	feature := NewFeature(db, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleCompose_WithoutDatabase(t *testing.T) {
	app := setupTestApp(nil)

	req := httptest.NewRequest("POST", "/v1/report/compose", strings.NewReader(`{"goal":"career"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(ReportIDHeader))

	var rep Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Len(t, rep.Sections, 5)
	assert.NotEmpty(t, rep.Disclaimer)
}

func TestHandleCompose_PersistsWhenConfigured(t *testing.T) {
	db, mock := setupMockDB(t)
	app := setupTestApp(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reports`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/v1/report/compose", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(ReportIDHeader))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCompose_StoreFailureStillComposes(t *testing.T) {
	db, mock := setupMockDB(t)
	app := setupTestApp(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reports`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/v1/report/compose", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(ReportIDHeader))
}

func TestHandleCompose_MalformedBody(t *testing.T) {
	app := setupTestApp(nil)

	req := httptest.NewRequest("POST", "/v1/report/compose", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleGet_WithoutDatabase(t *testing.T) {
	app := setupTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/report/abc-123", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleGet(t *testing.T) {
	db, mock := setupMockDB(t)
	app := setupTestApp(db)

	rows := sqlmock.NewRows([]string{"id", "goal", "locale", "summary", "payload", "created_at"}).
		AddRow("abc-123", "business", "ko-KR", "summary", []byte(`{}`), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `reports`").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/report/abc-123", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rec Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "abc-123", rec.ID)
}

func TestHandleGet_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	app := setupTestApp(db)

	mock.ExpectQuery("SELECT (.+) FROM `reports`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/report/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
