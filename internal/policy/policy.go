// Package policy содержит статические справочники: интервалы утилизации
// по категориям, пресеты интервалов/отсрочек и городские правила.
package policy

import "CleanSort/internal/model"

// CategoryInfo — описание категории отходов для клиента.
type CategoryInfo struct {
	Label           string `json:"label"`
	DefaultInterval int    `json:"default_interval"`
	Description     string `json:"description"`
}

// wasteCategories — таблица категорий. Интервалы по умолчанию в днях.
var wasteCategories = map[model.WasteCategory]CategoryInfo{
	model.CategoryDry: {
		Label:           "Dry Waste",
		DefaultInterval: 7,
		Description:     "Paper, plastic, metal, glass",
	},
	model.CategoryWet: {
		Label:           "Wet/Organic",
		DefaultInterval: 1,
		Description:     "Food scraps, vegetable peels",
	},
	model.CategoryMedical: {
		Label:           "Medical",
		DefaultInterval: 1,
		Description:     "Medicine, syringes, bandages",
	},
	model.CategoryHazardous: {
		Label:           "Hazardous",
		DefaultInterval: 30,
		Description:     "Batteries, chemicals, paint",
	},
	model.CategoryRecyclable: {
		Label:           "Recyclable",
		DefaultInterval: 7,
		Description:     "Clean plastic, glass, metal",
	},
	model.CategoryEWaste: {
		Label:           "E-Waste",
		DefaultInterval: 30,
		Description:     "Electronics, gadgets, cables",
	},
}

// DefaultInterval возвращает интервал утилизации в днях для категории.
// Для неизвестной категории возвращает 0: вызывающая сторона обязана
// предварительно проверить категорию через model.WasteCategory.Valid.
func DefaultInterval(cat model.WasteCategory) int {
	return wasteCategories[cat].DefaultInterval
}

// Info возвращает описание категории.
func Info(cat model.WasteCategory) (CategoryInfo, bool) {
	info, ok := wasteCategories[cat]
	return info, ok
}

// Preset — вариант выбора для клиента (подпись + значение).
type Preset struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// QuickIntervals — быстрые варианты интервала утилизации (в днях).
var QuickIntervals = []Preset{
	{Label: "1 day", Value: 1},
	{Label: "3 days", Value: 3},
	{Label: "1 week", Value: 7},
	{Label: "2 weeks", Value: 14},
	{Label: "1 month", Value: 30},
}

// SnoozeOptions — варианты отсрочки напоминания (в часах).
var SnoozeOptions = []Preset{
	{Label: "1 hour", Value: 1},
	{Label: "6 hours", Value: 6},
	{Label: "1 day", Value: 24},
}

// DefaultCity — город по умолчанию, пока пользователь не выбрал свой.
const DefaultCity = "Bengaluru, Karnataka"
