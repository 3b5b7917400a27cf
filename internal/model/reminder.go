package model

import "time"

// Персистентные статусы напоминания. "overdue" не хранится:
// он выводится на чтении сравнением срока с текущим временем.
const (
	StatusUpcoming  = "upcoming"
	StatusOverdue   = "overdue"
	StatusCompleted = "completed"
)

// Reminder — запись о предстоящей утилизации, создаётся планировщиком
// сразу после создания Item.
type Reminder struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	ItemID string `gorm:"not null;index" json:"item_id"`

	// Снимок товара на момент создания. Намеренно не синхронизируется
	// с последующими правками Item: текст напоминания остаётся стабильным.
	ItemName string        `gorm:"not null" json:"item_name"`
	Category WasteCategory `gorm:"not null;index" json:"category"`

	DueAt time.Time `gorm:"not null;index" json:"due_at"`

	// Status хранит только upcoming|completed.
	Status string `gorm:"not null;default:upcoming;index" json:"status"`

	// SnoozedUntil — если задан и ещё в будущем, заменяет DueAt
	// при вычислении фактического срока.
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
