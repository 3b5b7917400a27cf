package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"CleanSort/internal/service"
)

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError маппит ошибки сервиса в HTTP-статусы:
// валидация — 400, отсутствие записи — 404, недопустимый переход — 409,
// всё остальное — 500 (транзиентный отказ хранилища, клиент может повторить).
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrInvalidDuration):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrDanglingItem):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrReminderExists):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
