package service

import (
	"context"

	"go.uber.org/zap"
)

// BulkService применяет одну операцию к набору напоминаний.
// Семантика best-effort: каждый id обрабатывается независимо, сбой
// одного не прерывает остальные; частичные отказы собираются в отчёт.
type BulkService struct {
	reminders *ReminderService
	logger    *zap.SugaredLogger
}

// NewBulkService создаёт координатор пакетных операций.
func NewBulkService(reminders *ReminderService, logger *zap.SugaredLogger) *BulkService {
	return &BulkService{reminders: reminders, logger: logger}
}

// BulkFailure — отказ по одному id.
type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult — итог пакетной операции. Done позволяет вызывающей
// стороне очистить выбор от успешных id; неуспешные остаются выбраны
// для повтора.
type BulkResult struct {
	Done   []string      `json:"done"`
	Failed []BulkFailure `json:"failed"`
}

// apply прогоняет op по каждому id, собирая исходы.
func (s *BulkService) apply(ids []string, name string, op func(string) error) BulkResult {
	res := BulkResult{Done: []string{}, Failed: []BulkFailure{}}
	for _, id := range ids {
		if err := op(id); err != nil {
			s.logger.Warnw("bulk op failed for id", "op", name, "id", id, "error", err)
			res.Failed = append(res.Failed, BulkFailure{ID: id, Reason: err.Error()})
			continue
		}
		res.Done = append(res.Done, id)
	}
	return res
}

// MarkDone завершает каждое напоминание из набора.
func (s *BulkService) MarkDone(ctx context.Context, ids []string) BulkResult {
	return s.apply(ids, "mark_done", func(id string) error {
		return s.reminders.MarkDone(ctx, id)
	})
}

// Snooze откладывает каждое напоминание из набора. Невалидная
// длительность отклоняется до обращения к хранилищу.
func (s *BulkService) Snooze(ctx context.Context, ids []string, hours int) (BulkResult, error) {
	if hours <= 0 {
		return BulkResult{}, ErrInvalidDuration
	}
	return s.apply(ids, "snooze", func(id string) error {
		return s.reminders.Snooze(ctx, id, hours)
	}), nil
}

// Delete удаляет каждое напоминание (вместе с товаром) из набора.
func (s *BulkService) Delete(ctx context.Context, ids []string) BulkResult {
	return s.apply(ids, "delete", func(id string) error {
		return s.reminders.Delete(ctx, id)
	})
}
