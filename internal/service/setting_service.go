package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"CleanSort/internal/model"
	"CleanSort/internal/policy"
	"CleanSort/internal/repo"
)

// SettingService — пользовательские настройки и сервисные операции
// над данными (полная очистка, экспорт).
type SettingService struct {
	settings  repo.SettingRepository
	items     repo.ItemRepository
	reminders repo.ReminderRepository
	logger    *zap.SugaredLogger
}

// NewSettingService создаёт сервис настроек.
func NewSettingService(settings repo.SettingRepository, items repo.ItemRepository, reminders repo.ReminderRepository, logger *zap.SugaredLogger) *SettingService {
	return &SettingService{settings: settings, items: items, reminders: reminders, logger: logger}
}

// SelectedCity возвращает выбранный город или город по умолчанию.
func (s *SettingService) SelectedCity(ctx context.Context) (string, error) {
	set, err := s.settings.Get(ctx, model.SettingSelectedCity)
	if err == repo.ErrNotFound {
		return policy.DefaultCity, nil
	}
	if err != nil {
		return "", err
	}
	var city string
	if err := json.Unmarshal([]byte(set.Value), &city); err != nil || city == "" {
		return policy.DefaultCity, nil
	}
	return city, nil
}

// SetSelectedCity сохраняет выбранный город.
func (s *SettingService) SetSelectedCity(ctx context.Context, city string) error {
	if city == "" {
		return fmt.Errorf("city must not be empty")
	}
	raw, _ := json.Marshal(city)
	return s.settings.Put(ctx, model.SettingSelectedCity, string(raw))
}

// OnboardingCompleted сообщает, пройден ли онбординг.
func (s *SettingService) OnboardingCompleted(ctx context.Context) (bool, error) {
	set, err := s.settings.Get(ctx, model.SettingOnboardingCompleted)
	if err == repo.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var done bool
	_ = json.Unmarshal([]byte(set.Value), &done)
	return done, nil
}

// CompleteOnboarding помечает онбординг пройденным.
func (s *SettingService) CompleteOnboarding(ctx context.Context) error {
	return s.settings.Put(ctx, model.SettingOnboardingCompleted, "true")
}

// Get возвращает произвольную настройку как сырой JSON.
func (s *SettingService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	set, err := s.settings.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(set.Value), nil
}

// PutAll сохраняет набор произвольных настроек. Побеждает последняя
// запись, реляционных инвариантов нет.
func (s *SettingService) PutAll(ctx context.Context, prefs map[string]json.RawMessage) error {
	for key, val := range prefs {
		if key == "" {
			return fmt.Errorf("setting key must not be empty")
		}
		if err := s.settings.Put(ctx, key, string(val)); err != nil {
			return fmt.Errorf("put setting %q: %w", key, err)
		}
	}
	return nil
}

// GetAll возвращает все настройки.
func (s *SettingService) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	sets, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[string]json.RawMessage, len(sets))
	for _, set := range sets {
		res[set.Key] = json.RawMessage(set.Value)
	}
	return res, nil
}

// ClearAll стирает все три коллекции. Напоминания удаляются раньше
// товаров, чтобы не существовало окна с висячим item_id.
func (s *SettingService) ClearAll(ctx context.Context) error {
	if err := s.reminders.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear reminders: %w", err)
	}
	if err := s.items.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if err := s.settings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	s.logger.Infow("all user data cleared")
	return nil
}

// ExportPayload — выгрузка всех данных пользователя.
type ExportPayload struct {
	Items      []model.Item               `json:"items"`
	Reminders  []model.Reminder           `json:"reminders"`
	Settings   map[string]json.RawMessage `json:"settings"`
	ExportedAt time.Time                  `json:"exported_at"`
}

// Export собирает выгрузку всех трёх коллекций.
func (s *SettingService) Export(ctx context.Context) (*ExportPayload, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rems, err := s.reminders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportPayload{
		Items:      items,
		Reminders:  rems,
		Settings:   sets,
		ExportedAt: time.Now().UTC(),
	}, nil
}
