package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"CleanSort/internal/model"
	"CleanSort/internal/repo"
)

// ReminderService — машина состояний напоминания.
// Персистентные состояния: upcoming и completed (терминальное).
// "overdue" выводится на каждом чтении и никогда не кешируется:
// "сейчас" движется независимо от записей.
type ReminderService struct {
	items     repo.ItemRepository
	reminders repo.ReminderRepository
	logger    *zap.SugaredLogger
	now       func() time.Time
}

// NewReminderService создаёт сервис напоминаний.
func NewReminderService(items repo.ItemRepository, reminders repo.ReminderRepository, logger *zap.SugaredLogger) *ReminderService {
	return &ReminderService{items: items, reminders: reminders, logger: logger, now: time.Now}
}

// WithClock подменяет источник времени. Для тестов.
func (s *ReminderService) WithClock(now func() time.Time) *ReminderService {
	s.now = now
	return s
}

// EffectiveDueAt возвращает фактический срок: SnoozedUntil, если отсрочка
// задана и ещё не истекла, иначе DueAt.
func EffectiveDueAt(rem *model.Reminder, now time.Time) time.Time {
	if rem.SnoozedUntil != nil && rem.SnoozedUntil.After(now) {
		return *rem.SnoozedUntil
	}
	return rem.DueAt
}

// DeriveStatus — чистая функция вычисления статуса на момент now.
// completed — липкий; upcoming с истёкшим фактическим сроком читается
// как overdue.
func DeriveStatus(rem *model.Reminder, now time.Time) string {
	if rem.Status == model.StatusCompleted {
		return model.StatusCompleted
	}
	if EffectiveDueAt(rem, now).Before(now) {
		return model.StatusOverdue
	}
	return model.StatusUpcoming
}

// ReminderView — напоминание с вычисленным статусом.
type ReminderView struct {
	model.Reminder
	// DerivedStatus — upcoming|overdue|completed на момент чтения.
	DerivedStatus string `json:"derived_status"`
	// EffectiveDueAt учитывает действующую отсрочку.
	EffectiveDueAt time.Time `json:"effective_due_at"`
}

// List возвращает все напоминания со статусами на текущий момент.
func (s *ReminderService) List(ctx context.Context) ([]ReminderView, error) {
	rems, err := s.reminders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]ReminderView, 0, len(rems))
	for i := range rems {
		views = append(views, ReminderView{
			Reminder:       rems[i],
			DerivedStatus:  DeriveStatus(&rems[i], now),
			EffectiveDueAt: EffectiveDueAt(&rems[i], now),
		})
	}
	return views, nil
}

// Counts — сводка по статусам для дашборда.
type Counts struct {
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
	Completed int `json:"completed"`
}

// Count считает напоминания по вычисленным статусам.
func (s *ReminderService) Count(ctx context.Context) (Counts, error) {
	views, err := s.List(ctx)
	if err != nil {
		return Counts{}, err
	}
	var c Counts
	for i := range views {
		switch views[i].DerivedStatus {
		case model.StatusCompleted:
			c.Completed++
		case model.StatusOverdue:
			c.Overdue++
		default:
			c.Upcoming++
		}
	}
	return c, nil
}

// MarkDone переводит напоминание в completed и снимает отсрочку.
// Повторный вызов на завершённом напоминании — успешный no-op.
func (s *ReminderService) MarkDone(ctx context.Context, id string) error {
	return s.reminders.Mutate(ctx, id, func(rem *model.Reminder) error {
		rem.Status = model.StatusCompleted
		rem.SnoozedUntil = nil
		return nil
	})
}

// Snooze откладывает напоминание на hours часов от текущего момента.
// Завершённое напоминание отложить нельзя.
func (s *ReminderService) Snooze(ctx context.Context, id string, hours int) error {
	if hours <= 0 {
		return ErrInvalidDuration
	}
	until := s.now().Add(time.Duration(hours) * time.Hour)
	return s.reminders.Mutate(ctx, id, func(rem *model.Reminder) error {
		if rem.Status == model.StatusCompleted {
			return ErrInvalidTransition
		}
		rem.Status = model.StatusUpcoming
		rem.SnoozedUntil = &until
		return nil
	})
}

// Edit — зарезервированная точка расширения: проверяет существование
// записи и ничего не меняет.
func (s *ReminderService) Edit(ctx context.Context, id string) error {
	_, err := s.reminders.GetByID(ctx, id)
	return err
}

// Delete удаляет напоминание вместе с его товаром: напоминание не
// переживает товар, а товар без напоминания не остаётся в списке.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	rem, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reminders.DeleteByItemID(ctx, rem.ItemID); err != nil {
		return fmt.Errorf("cascade delete reminders: %w", err)
	}
	if err := s.items.Delete(ctx, rem.ItemID); err != nil && err != repo.ErrNotFound {
		return fmt.Errorf("delete owning item: %w", err)
	}
	return nil
}
