package handlers_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"CleanSort/internal/config"
	"CleanSort/internal/handlers"
	"CleanSort/internal/model"
	"CleanSort/internal/ocr"
	"CleanSort/internal/repo"
	"CleanSort/internal/service"
)

// fakeOCR — управляемый распознаватель для роутера в тестах.
type fakeOCR struct {
	items []ocr.ParsedItem
	err   error
}

func (f *fakeOCR) ProcessReceipt(_ context.Context, _ []byte, _, _ string) ([]ocr.ParsedItem, error) {
	return f.items, f.err
}

// newTestRouter поднимает полный HTTP-стек поверх in-memory SQLite.
func newTestRouter(t *testing.T) (http.Handler, *fakeOCR) {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Item{}, &model.Reminder{}, &model.Setting{}))

	logger := zap.NewNop().Sugar()
	ir := repo.NewItemRepository(db)
	rr := repo.NewReminderRepository(db)
	sr := repo.NewSettingRepository(db)

	itemSvc := service.NewItemService(ir, rr, logger)
	reminderSvc := service.NewReminderService(ir, rr, logger)
	bulkSvc := service.NewBulkService(reminderSvc, logger)
	settingSvc := service.NewSettingService(sr, ir, rr, logger)
	fake := &fakeOCR{err: errors.New("not configured")}
	scanSvc := service.NewScanService(fake, settingSvc, logger)

	h := handlers.NewHandler(itemSvc, reminderSvc, bulkSvc, scanSvc, settingSvc, logger, &config.Config{})
	return h.Router, fake
}

// doJSON выполняет запрос с JSON-телом и возвращает ответ.
func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody разбирает JSON-ответ в v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// createItem создаёт товар через API и возвращает его.
func createItem(t *testing.T, router http.Handler, body map[string]any) model.Item {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/items", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var it model.Item
	decodeBody(t, rec, &it)
	return it
}

// listReminders возвращает напоминания со сводкой.
func listReminders(t *testing.T, router http.Handler) listResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodGet, "/api/reminders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp listResponse
	decodeBody(t, rec, &resp)
	return resp
}

type listResponse struct {
	Reminders []service.ReminderView `json:"reminders"`
	Counts    service.Counts         `json:"counts"`
}

// newRawRequest собирает запрос с сырым телом, без JSON-обвязки.
func newRawRequest(t *testing.T, method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req, httptest.NewRecorder()
}

// gzipString сжимает строку для проверки приёма сжатых тел.
func gzipString(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.String()
}
