package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CleanSort/internal/service"
)

// ReminderHandler обрабатывает жизненный цикл напоминаний,
// одиночные и пакетные операции.
type ReminderHandler struct {
	ReminderService *service.ReminderService
	BulkService     *service.BulkService
	Logger          *zap.SugaredLogger
}

// NewReminderHandler создаёт хендлер reminders
func NewReminderHandler(reminderService *service.ReminderService, bulkService *service.BulkService, logger *zap.SugaredLogger) *ReminderHandler {
	return &ReminderHandler{ReminderService: reminderService, BulkService: bulkService, Logger: logger}
}

// ListResponse — напоминания со статусами на момент чтения плюс сводка.
type ListResponse struct {
	Reminders []service.ReminderView `json:"reminders"`
	Counts    service.Counts         `json:"counts"`
}

// List возвращает все напоминания. Статус каждого вычисляется на
// этом чтении, не из хранилища.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.ReminderService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, err)
		return
	}
	counts, err := h.ReminderService.Count(r.Context())
	if err != nil {
		h.Logger.Errorw("List: counts error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Reminders: views, Counts: counts})
}

// MarkDone завершает напоминание. Идемпотентен.
func (h *ReminderHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ReminderService.MarkDone(r.Context(), id); err != nil {
		h.Logger.Warnw("MarkDone: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SnoozeRequest — тело отсрочки.
type SnoozeRequest struct {
	Hours int `json:"hours"`
}

// Snooze откладывает напоминание на hours часов.
func (h *ReminderHandler) Snooze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SnoozeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Snooze: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.ReminderService.Snooze(r.Context(), id, req.Hours); err != nil {
		h.Logger.Warnw("Snooze: service error", "id", id, "hours", req.Hours, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет напоминание вместе с его товаром.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ReminderService.Delete(r.Context(), id); err != nil {
		h.Logger.Warnw("Delete: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkRequest — набор id и, для snooze, длительность.
type BulkRequest struct {
	IDs   []string `json:"ids"`
	Hours int      `json:"hours,omitempty"`
}

// BulkMarkDone завершает набор напоминаний best-effort.
func (h *ReminderHandler) BulkMarkDone(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	res := h.BulkService.MarkDone(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, res)
}

// BulkSnooze откладывает набор напоминаний best-effort.
func (h *ReminderHandler) BulkSnooze(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.BulkService.Snooze(r.Context(), req.IDs, req.Hours)
	if err != nil {
		h.Logger.Warnw("BulkSnooze: rejected", "hours", req.Hours, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// BulkDelete удаляет набор напоминаний (с товарами) best-effort.
func (h *ReminderHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	res := h.BulkService.Delete(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, res)
}
