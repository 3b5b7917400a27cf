package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanSort/internal/model"
)

func TestReminderList(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "recyclable"})
	createItem(t, router, map[string]any{"name": "Bread", "category": "wet"})

	resp := listReminders(t, router)
	require.Len(t, resp.Reminders, 2)
	assert.Equal(t, 2, resp.Counts.Upcoming)
	assert.Equal(t, 0, resp.Counts.Overdue)
	assert.Equal(t, 0, resp.Counts.Completed)
	for _, v := range resp.Reminders {
		assert.Equal(t, model.StatusUpcoming, v.DerivedStatus)
		assert.False(t, v.EffectiveDueAt.IsZero())
	}
}

func TestReminderMarkDone(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "recyclable"})
	resp := listReminders(t, router)
	id := resp.Reminders[0].ID

	rec := doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/done", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// идемпотентен
	rec = doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/done", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	resp = listReminders(t, router)
	assert.Equal(t, model.StatusCompleted, resp.Reminders[0].DerivedStatus)
	assert.Equal(t, 1, resp.Counts.Completed)
}

func TestReminderMarkDone_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/reminders/missing/done", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReminderSnooze(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "recyclable"})
	resp := listReminders(t, router)
	id := resp.Reminders[0].ID

	rec := doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/snooze", map[string]any{"hours": 6})
	require.Equal(t, http.StatusNoContent, rec.Code)

	resp = listReminders(t, router)
	require.NotNil(t, resp.Reminders[0].SnoozedUntil)
	assert.Equal(t, model.StatusUpcoming, resp.Reminders[0].DerivedStatus)
}

func TestReminderSnooze_Errors(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "Milk", "category": "recyclable"})
	resp := listReminders(t, router)
	id := resp.Reminders[0].ID

	// нулевая длительность
	rec := doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/snooze", map[string]any{"hours": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// отсрочка завершённого — конфликт
	rec = doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/done", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/reminders/"+id+"/snooze", map[string]any{"hours": 6})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReminderDelete_RemovesItem(t *testing.T) {
	router, _ := newTestRouter(t)
	it := createItem(t, router, map[string]any{"name": "Milk", "category": "recyclable"})
	resp := listReminders(t, router)
	id := resp.Reminders[0].ID

	rec := doJSON(t, router, http.MethodDelete, "/api/reminders/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// товар удалён вместе с напоминанием
	rec = doJSON(t, router, http.MethodGet, "/api/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/reminders/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReminderBulkDone(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "a", "category": "dry"})
	createItem(t, router, map[string]any{"name": "b", "category": "dry"})
	resp := listReminders(t, router)
	ids := []string{resp.Reminders[0].ID, "ghost", resp.Reminders[1].ID}

	rec := doJSON(t, router, http.MethodPost, "/api/reminders/bulk/done", map[string]any{"ids": ids})
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Done   []string `json:"done"`
		Failed []struct {
			ID     string `json:"id"`
			Reason string `json:"reason"`
		} `json:"failed"`
	}
	decodeBody(t, rec, &res)
	assert.Len(t, res.Done, 2)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "ghost", res.Failed[0].ID)
	assert.NotEmpty(t, res.Failed[0].Reason)

	resp = listReminders(t, router)
	assert.Equal(t, 2, resp.Counts.Completed)
}

func TestReminderBulkSnooze(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "a", "category": "dry"})
	resp := listReminders(t, router)
	ids := []string{resp.Reminders[0].ID}

	// невалидная длительность отклоняет весь запрос
	rec := doJSON(t, router, http.MethodPost, "/api/reminders/bulk/snooze", map[string]any{"ids": ids, "hours": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/reminders/bulk/snooze", map[string]any{"ids": ids, "hours": 24})
	require.Equal(t, http.StatusOK, rec.Code)

	resp = listReminders(t, router)
	assert.NotNil(t, resp.Reminders[0].SnoozedUntil)
}

func TestReminderBulkDelete(t *testing.T) {
	router, _ := newTestRouter(t)
	createItem(t, router, map[string]any{"name": "a", "category": "dry"})
	createItem(t, router, map[string]any{"name": "b", "category": "wet"})
	resp := listReminders(t, router)
	ids := []string{resp.Reminders[0].ID, resp.Reminders[1].ID}

	rec := doJSON(t, router, http.MethodPost, "/api/reminders/bulk/delete", map[string]any{"ids": ids})
	require.Equal(t, http.StatusOK, rec.Code)

	resp = listReminders(t, router)
	assert.Empty(t, resp.Reminders)

	rec = doJSON(t, router, http.MethodGet, "/api/items", nil)
	var items []model.Item
	decodeBody(t, rec, &items)
	assert.Empty(t, items, "товары удаляются вместе с напоминаниями")
}
