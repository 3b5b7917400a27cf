package ocr

import "strings"

// basePrompt — базовый запрос к модели: структура ответа фиксирована.
const basePrompt = `Extract items from this receipt. Return JSON array with: name, quantity, category (dry/wet/recyclable/hazardous/medical/e-waste), disposalInterval (1-30 days), confidence (0.0-1.0).

Example: [{"name":"Milk","quantity":"1L","category":"recyclable","disposalInterval":3,"confidence":0.95}]`

// cityPromptSuffixes — городские дополнения к промпту: локальные
// правила сегрегации влияют на рекомендованный интервал.
var cityPromptSuffixes = map[string]string{
	"Mumbai, Maharashtra": `

IMPORTANT: This receipt is from Mumbai, Maharashtra. Please consider local waste management practices:
- BMC (Brihanmumbai Municipal Corporation) has specific segregation rules
- Wet waste should be disposed daily due to humidity
- Dry waste can be stored for 7 days before disposal
- Hazardous waste must be taken to designated collection centers
- E-waste collection is available through authorized dealers`,

	"Delhi, NCR": `

IMPORTANT: This receipt is from Delhi, NCR. Please consider local waste management practices:
- MCD (Municipal Corporation of Delhi) enforces strict segregation
- Wet waste should be composted or disposed within 24 hours
- Dry waste can be stored for up to 7 days
- Hazardous waste requires special handling and collection
- E-waste can be dropped at designated collection points`,

	"Bengaluru, Karnataka": `

IMPORTANT: This receipt is from Bengaluru, Karnataka. Please consider local waste management practices:
- BBMP (Bruhat Bengaluru Mahanagara Palike) has comprehensive waste segregation rules
- Wet waste should be disposed daily or every other day
- Dry waste can be stored for 7 days before disposal
- Hazardous waste must be taken to designated collection centers
- E-waste collection is available through authorized dealers`,

	"Chennai, Tamil Nadu": `

IMPORTANT: This receipt is from Chennai, Tamil Nadu. Please consider local waste management practices:
- Greater Chennai Corporation has specific segregation requirements
- Wet waste should be disposed daily due to tropical climate
- Dry waste can be stored for 7 days before disposal
- Hazardous waste requires special handling and collection
- E-waste can be dropped at designated collection points`,

	"Hyderabad, Telangana": `

IMPORTANT: This receipt is from Hyderabad, Telangana. Please consider local waste management practices:
- GHMC (Greater Hyderabad Municipal Corporation) enforces waste segregation
- Wet waste should be disposed daily or every other day
- Dry waste can be stored for 7 days before disposal
- Hazardous waste must be taken to designated collection centers
- E-waste collection is available through authorized dealers`,
}

// buildPrompt собирает промпт с городским дополнением, если город известен.
func buildPrompt(city string) string {
	suffix, ok := cityPromptSuffixes[city]
	if !ok {
		return basePrompt
	}
	return basePrompt + suffix
}

// KnownCities возвращает города, для которых есть локальные промпты.
func KnownCities() []string {
	cities := make([]string, 0, len(cityPromptSuffixes))
	for city := range cityPromptSuffixes {
		cities = append(cities, city)
	}
	return cities
}

// normalizeCategory приводит категорию модели к каноничному виду.
func normalizeCategory(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
