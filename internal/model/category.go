package model

// WasteCategory — категория отходов, определяет правила утилизации и
// интервал напоминания по умолчанию.
type WasteCategory string

const (
	CategoryDry        WasteCategory = "dry"
	CategoryWet        WasteCategory = "wet"
	CategoryMedical    WasteCategory = "medical"
	CategoryHazardous  WasteCategory = "hazardous"
	CategoryRecyclable WasteCategory = "recyclable"
	CategoryEWaste     WasteCategory = "e-waste"
)

// Categories — все допустимые категории в фиксированном порядке.
var Categories = []WasteCategory{
	CategoryDry,
	CategoryWet,
	CategoryMedical,
	CategoryHazardous,
	CategoryRecyclable,
	CategoryEWaste,
}

// Valid проверяет, что значение входит в список известных категорий.
func (c WasteCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
