package model

import "time"

// Item — купленный товар, который отслеживается до момента утилизации.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name     string        `gorm:"not null" json:"name"`
	Category WasteCategory `gorm:"not null;index" json:"category"`

	Quantity float64 `gorm:"not null;default:1" json:"quantity"`
	Unit     string  `json:"unit"`

	// Interval — число дней до утилизации. Заполняется из таблицы
	// категорий, если клиент не передал своё значение.
	Interval int `gorm:"not null" json:"interval"`

	// Связи: у товара ровно одно активное напоминание (см. service).
	Reminders []Reminder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
