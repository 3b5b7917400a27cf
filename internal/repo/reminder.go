package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"CleanSort/internal/model"
)

// ReminderRepository — контракт доступа к Reminder.
type ReminderRepository interface {
	Create(ctx context.Context, rem *model.Reminder) error
	GetByID(ctx context.Context, id string) (*model.Reminder, error)
	ListAll(ctx context.Context) ([]model.Reminder, error)
	ListByItemID(ctx context.Context, itemID string) ([]model.Reminder, error)
	// ListDueBefore возвращает незавершённые напоминания со сроком раньше t.
	ListDueBefore(ctx context.Context, t time.Time) ([]model.Reminder, error)
	// Mutate выполняет read-modify-write одной записи в транзакции:
	// параллельная правка той же записи не теряется между чтением и записью.
	Mutate(ctx context.Context, id string, fn func(*model.Reminder) error) error
	Delete(ctx context.Context, id string) error
	// DeleteByItemID удаляет все напоминания товара (каскад).
	DeleteByItemID(ctx context.Context, itemID string) error
	DeleteAll(ctx context.Context) error
}

type reminderRepo struct {
	db *gorm.DB
}

// NewReminderRepository создаёт реализацию репозитория для Reminder.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, rem *model.Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (*model.Reminder, error) {
	var rem model.Reminder
	err := r.db.WithContext(ctx).First(&rem, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepo) ListAll(ctx context.Context) ([]model.Reminder, error) {
	var rems []model.Reminder
	if err := r.db.WithContext(ctx).Order("due_at ASC").Find(&rems).Error; err != nil {
		return nil, err
	}
	return rems, nil
}

func (r *reminderRepo) ListByItemID(ctx context.Context, itemID string) ([]model.Reminder, error) {
	var rems []model.Reminder
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Find(&rems).Error; err != nil {
		return nil, err
	}
	return rems, nil
}

func (r *reminderRepo) ListDueBefore(ctx context.Context, t time.Time) ([]model.Reminder, error) {
	var rems []model.Reminder
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.StatusCompleted).
		Where("due_at < ?", t).
		Order("due_at ASC").
		Find(&rems).Error
	if err != nil {
		return nil, err
	}
	return rems, nil
}

func (r *reminderRepo) Mutate(ctx context.Context, id string, fn func(*model.Reminder) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rem model.Reminder
		err := tx.First(&rem, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := fn(&rem); err != nil {
			return err
		}
		return tx.Save(&rem).Error
	})
}

func (r *reminderRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.Reminder{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reminderRepo) DeleteByItemID(ctx context.Context, itemID string) error {
	// RowsAffected не проверяем: отсутствие напоминаний — не ошибка.
	return r.db.WithContext(ctx).Delete(&model.Reminder{}, "item_id = ?", itemID).Error
}

func (r *reminderRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Reminder{}).Error
}
