package service

import (
	"errors"

	"CleanSort/internal/repo"
)

// Ошибки валидации: отклоняются до любой записи в хранилище
// и не ретраятся автоматически.
var (
	ErrEmptyName       = errors.New("item name must not be empty")
	ErrInvalidCategory = errors.New("unknown waste category")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidInterval = errors.New("disposal interval must be positive")
	ErrInvalidDuration = errors.New("snooze duration must be a positive number of hours")
)

// Ошибки состояния.
var (
	// ErrNotFound — операция адресует id, которого нет в хранилище.
	ErrNotFound = repo.ErrNotFound

	// ErrInvalidTransition — недопустимый переход, например snooze
	// завершённого напоминания.
	ErrInvalidTransition = errors.New("invalid reminder state transition")

	// ErrDanglingItem — планировщик вызван для несуществующего товара.
	ErrDanglingItem = errors.New("item does not exist in the store")

	// ErrReminderExists — у товара уже есть активное напоминание.
	ErrReminderExists = errors.New("item already has an active reminder")
)
