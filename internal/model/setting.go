package model

import "time"

// Известные ключи настроек.
const (
	SettingSelectedCity        = "selected_city"
	SettingOnboardingCompleted = "onboarding_completed"
)

// Setting — пара ключ/значение пользовательских настроек.
// Значение хранится как JSON-строка, побеждает последняя запись.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
