// Package ocr — интеграция с Gemini для распознавания чеков.
// Снимок чека превращается в список позиций с категориями отходов.
package ocr

import (
	"context"

	"CleanSort/internal/model"
)

// ParsedItem — позиция, извлечённая из чека.
type ParsedItem struct {
	Name       string              `json:"name"`
	Quantity   string              `json:"quantity"`
	Category   model.WasteCategory `json:"category"`
	Interval   int                 `json:"interval"`
	Confidence float64             `json:"confidence"`
}

// Client — коллаборатор распознавания: изображение на входе,
// список позиций на выходе. Движок трактует его как непрозрачный.
type Client interface {
	ProcessReceipt(ctx context.Context, image []byte, mimeType, city string) ([]ParsedItem, error)
}

// SampleResults — резервный набор позиций на случай отказа
// распознавания: сканирование не должно падать из-за внешнего API.
func SampleResults() []ParsedItem {
	return []ParsedItem{
		{Name: "Organic Milk 1L", Quantity: "1 bottle", Category: model.CategoryRecyclable, Interval: 3, Confidence: 0.95},
		{Name: "Bananas", Quantity: "1.2 kg", Category: model.CategoryWet, Interval: 1, Confidence: 0.88},
		{Name: "Bread Loaf", Quantity: "1 pack", Category: model.CategoryDry, Interval: 7, Confidence: 0.92},
	}
}
