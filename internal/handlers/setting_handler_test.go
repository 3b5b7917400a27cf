package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanSort/internal/model"
	"CleanSort/internal/policy"
)

func TestCitySettings(t *testing.T) {
	router, _ := newTestRouter(t)

	// город по умолчанию до первого выбора
	rec := doJSON(t, router, http.MethodGet, "/api/settings/city", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var city map[string]string
	decodeBody(t, rec, &city)
	assert.Equal(t, policy.DefaultCity, city["city"])

	rec = doJSON(t, router, http.MethodPut, "/api/settings/city", map[string]string{"city": "Chennai, Tamil Nadu"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/settings/city", nil)
	decodeBody(t, rec, &city)
	assert.Equal(t, "Chennai, Tamil Nadu", city["city"])

	rec = doJSON(t, router, http.MethodPut, "/api/settings/city", map[string]string{"city": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOnboarding(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/settings/onboarding", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]bool
	decodeBody(t, rec, &status)
	assert.False(t, status["completed"])

	rec = doJSON(t, router, http.MethodPost, "/api/settings/onboarding", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/settings/onboarding", nil)
	decodeBody(t, rec, &status)
	assert.True(t, status["completed"])
}

func TestSettingsPutGetAll(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/settings", map[string]any{
		"theme":         "dark",
		"notifications": map[string]bool{"push": true},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var prefs map[string]any
	decodeBody(t, rec, &prefs)
	assert.Equal(t, "dark", prefs["theme"])
}

func TestDataClear(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "wet"})
	rec := doJSON(t, router, http.MethodPut, "/api/settings/city", map[string]string{"city": "Delhi, NCR"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/data/clear", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	resp := listReminders(t, router)
	assert.Empty(t, resp.Reminders)

	rec = doJSON(t, router, http.MethodGet, "/api/items", nil)
	var items []model.Item
	decodeBody(t, rec, &items)
	assert.Empty(t, items)

	// выбор города сброшен к дефолту
	rec = doJSON(t, router, http.MethodGet, "/api/settings/city", nil)
	var city map[string]string
	decodeBody(t, rec, &city)
	assert.Equal(t, policy.DefaultCity, city["city"])
}

func TestDataExport(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "wet"})

	rec := doJSON(t, router, http.MethodGet, "/api/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Items      []model.Item     `json:"items"`
		Reminders  []model.Reminder `json:"reminders"`
		ExportedAt string           `json:"exported_at"`
	}
	decodeBody(t, rec, &payload)
	assert.Len(t, payload.Items, 1)
	assert.Len(t, payload.Reminders, 1)
	assert.NotEmpty(t, payload.ExportedAt)
}

func TestGuides(t *testing.T) {
	router, _ := newTestRouter(t)

	// без параметров — правила выбранного города (по умолчанию Bengaluru)
	rec := doJSON(t, router, http.MethodGet, "/api/guides", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var guides []policy.Guide
	decodeBody(t, rec, &guides)
	require.Len(t, guides, 4)
	for _, g := range guides {
		assert.Equal(t, "Bengaluru", g.City)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/guides?city=Mumbai&category=wet", nil)
	decodeBody(t, rec, &guides)
	require.Len(t, guides, 1)
	assert.Equal(t, "BMC-WET-1", guides[0].ID)
}

func TestCategories(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []struct {
			Value           string `json:"value"`
			Label           string `json:"label"`
			DefaultInterval int    `json:"default_interval"`
		} `json:"categories"`
		QuickIntervals []policy.Preset `json:"quick_intervals"`
		SnoozeOptions  []policy.Preset `json:"snooze_options"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Categories, 6)
	assert.Len(t, resp.QuickIntervals, 5)
	assert.Len(t, resp.SnoozeOptions, 3)

	byValue := map[string]int{}
	for _, c := range resp.Categories {
		byValue[c.Value] = c.DefaultInterval
	}
	assert.Equal(t, 7, byValue["dry"])
	assert.Equal(t, 1, byValue["wet"])
	assert.Equal(t, 30, byValue["hazardous"])
}
