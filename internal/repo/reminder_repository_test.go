package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanSort/internal/model"
)

func newReminder(itemID string, dueAt time.Time) *model.Reminder {
	return &model.Reminder{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		ItemName: "test item",
		Category: model.CategoryRecyclable,
		DueAt:    dueAt,
		Status:   model.StatusUpcoming,
	}
}

func TestReminderRepository_Mutate(t *testing.T) {
	db := newTestDB(t)
	r := NewReminderRepository(db)
	ctx := context.Background()

	rem := newReminder("item-1", time.Now().Add(24*time.Hour))
	require.NoError(t, r.Create(ctx, rem))

	until := time.Now().Add(6 * time.Hour)
	err := r.Mutate(ctx, rem.ID, func(m *model.Reminder) error {
		m.SnoozedUntil = &until
		return nil
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, rem.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SnoozedUntil)
	assert.WithinDuration(t, until, *got.SnoozedUntil, time.Second)
}

func TestReminderRepository_Mutate_NotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewReminderRepository(db)

	err := r.Mutate(context.Background(), "missing", func(m *model.Reminder) error {
		t.Fatal("callback must not run for missing id")
		return nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReminderRepository_Mutate_CallbackErrorRollsBack(t *testing.T) {
	db := newTestDB(t)
	r := NewReminderRepository(db)
	ctx := context.Background()

	rem := newReminder("item-1", time.Now().Add(24*time.Hour))
	require.NoError(t, r.Create(ctx, rem))

	wantErr := assert.AnError
	err := r.Mutate(ctx, rem.ID, func(m *model.Reminder) error {
		m.Status = model.StatusCompleted
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	got, err := r.GetByID(ctx, rem.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUpcoming, got.Status, "ошибка колбэка не должна оставлять запись изменённой")
}

func TestReminderRepository_DeleteByItemID(t *testing.T) {
	db := newTestDB(t)
	r := NewReminderRepository(db)
	ctx := context.Background()

	// два напоминания одного товара — сценарий ремонта, каскад снимает оба
	require.NoError(t, r.Create(ctx, newReminder("item-1", time.Now())))
	require.NoError(t, r.Create(ctx, newReminder("item-1", time.Now())))
	require.NoError(t, r.Create(ctx, newReminder("item-2", time.Now())))

	require.NoError(t, r.DeleteByItemID(ctx, "item-1"))

	rems, err := r.ListByItemID(ctx, "item-1")
	require.NoError(t, err)
	assert.Empty(t, rems)

	rems, err = r.ListByItemID(ctx, "item-2")
	require.NoError(t, err)
	assert.Len(t, rems, 1)

	// отсутствие напоминаний — не ошибка
	assert.NoError(t, r.DeleteByItemID(ctx, "item-1"))
}

func TestReminderRepository_ListDueBefore(t *testing.T) {
	db := newTestDB(t)
	r := NewReminderRepository(db)
	ctx := context.Background()
	now := time.Now()

	past := newReminder("item-1", now.Add(-time.Hour))
	future := newReminder("item-2", now.Add(time.Hour))
	done := newReminder("item-3", now.Add(-2*time.Hour))
	done.Status = model.StatusCompleted
	require.NoError(t, r.Create(ctx, past))
	require.NoError(t, r.Create(ctx, future))
	require.NoError(t, r.Create(ctx, done))

	due, err := r.ListDueBefore(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, past.ID, due[0].ID)
}
