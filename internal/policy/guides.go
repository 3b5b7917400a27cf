package policy

import (
	"strings"

	"CleanSort/internal/model"
)

// GuideLink — внешняя ссылка на официальный источник.
type GuideLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Guide — городское правило утилизации. Статический справочный текст,
// без логики: инварианты движка на него не опираются.
type Guide struct {
	ID          string              `json:"id"`
	Category    model.WasteCategory `json:"category"`
	Region      string              `json:"region"`
	City        string              `json:"city"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Steps       []string            `json:"steps"`
	Dos         []string            `json:"dos"`
	Donts       []string            `json:"donts"`
	Links       []GuideLink         `json:"links"`
}

var disposalGuides = []Guide{
	{
		ID:          "BBMP-WET-1",
		Category:    model.CategoryWet,
		Region:      "Karnataka",
		City:        "Bengaluru",
		Title:       "Bengaluru Wet Waste Segregation",
		Description: "All organic, biodegradable waste generated from kitchens and gardens must be segregated and composted or handed over to BBMP collection daily or every other day.",
		Steps: []string{
			"Collect all food scraps, fruit and vegetable peels, cooked food leftovers, garden waste in a separate bin.",
			"Ensure no plastic, glass, metal, or non-biodegradable items are mixed with wet waste.",
			"Compost wet waste at home if possible, or hand it over to the BBMP waste collector daily or every other day.",
		},
		Dos: []string{
			"Segregate wet waste daily.",
			"Compost kitchen and garden waste at home.",
			"Use tight-lidded bins to prevent pests and odor.",
		},
		Donts: []string{
			"Mix wet waste with dry, recyclable, medical, or hazardous waste.",
			"Dispose of plastic bags, sanitary napkins, or e-waste in wet waste bins.",
			"Let wet waste accumulate for more than 2 days.",
		},
		Links: []GuideLink{
			{Title: "BBMP Solid Waste Management Policy", URL: "https://bbmp.gov.in/solid-waste-management"},
			{Title: "KSPCB Guidelines for Waste Management", URL: "https://kspcb.karnataka.gov.in/Waste_Management_Rules"},
		},
	},
	{
		ID:          "BBMP-DRY-1",
		Category:    model.CategoryDry,
		Region:      "Karnataka",
		City:        "Bengaluru",
		Title:       "Bengaluru Dry Waste Segregation",
		Description: "Non-biodegradable waste that cannot be easily recycled due to contamination, mixed materials, or lack of processing facilities.",
		Steps: []string{
			"Collect thermal paper receipts, multi-layered packaging, contaminated plastic/paper, rubber, and old clothes in a separate dry waste bin.",
			"Ensure these items are relatively clean and dry.",
			"Hand over collected dry waste to the BBMP dry waste collector, typically once or twice a week.",
		},
		Dos: []string{
			"Segregate all non-wet waste into dry waste.",
			"Ensure dry waste is not contaminated with food or liquids.",
			"Bag small dry waste items securely.",
		},
		Donts: []string{
			"Mix wet, medical, or hazardous waste with dry waste.",
			"Dispose of construction debris or e-waste with regular dry waste.",
		},
		Links: []GuideLink{
			{Title: "BBMP Solid Waste Management Policy", URL: "https://bbmp.gov.in/solid-waste-management"},
		},
	},
	{
		ID:          "BBMP-REC-1",
		Category:    model.CategoryRecyclable,
		Region:      "Karnataka",
		City:        "Bengaluru",
		Title:       "Bengaluru Recyclable Waste Segregation",
		Description: "Clean and dry recyclable materials like paper, cardboard, plastic bottles, glass bottles, and metal cans are collected separately at Dry Waste Collection Centers (DWCCs).",
		Steps: []string{
			"Rinse plastic and glass containers to remove food residue.",
			"Flatten cardboard boxes and plastic bottles to save space.",
			"Hand over segregated recyclables to the BBMP dry waste collector or the nearest DWCC.",
		},
		Dos: []string{
			"Clean and dry all recyclable items thoroughly.",
			"Flatten items to optimize collection space.",
		},
		Donts: []string{
			"Dispose of food-contaminated items as recyclables.",
			"Mix broken ceramics, light bulbs, or window glass with recyclable glass.",
		},
		Links: []GuideLink{
			{Title: "BBMP Dry Waste Collection Centers", URL: "https://bbmp.gov.in/dry-waste-collection-centers"},
		},
	},
	{
		ID:          "BBMP-HAZ-1",
		Category:    model.CategoryHazardous,
		Region:      "Karnataka",
		City:        "Bengaluru",
		Title:       "Bengaluru Hazardous Waste Management",
		Description: "Household batteries, chemicals, and hazardous materials require special disposal through BBMP authorized centers.",
		Steps: []string{
			"Collect batteries in a dry container.",
			"Tape terminals of lithium batteries.",
			"Take to a BBMP hazardous waste collection center.",
			"Get an acknowledgment receipt.",
		},
		Dos: []string{
			"Separate different battery types.",
			"Tape terminals to prevent short circuits.",
		},
		Donts: []string{
			"Throw batteries in regular bins.",
			"Burn or puncture batteries.",
		},
		Links: []GuideLink{
			{Title: "BBMP E-Waste Management", URL: "https://bbmp.gov.in/e-waste-management/"},
		},
	},
	{
		ID:          "BMC-WET-1",
		Category:    model.CategoryWet,
		Region:      "Maharashtra",
		City:        "Mumbai",
		Title:       "Mumbai Wet Waste Segregation",
		Description: "All organic, biodegradable waste generated from kitchens and gardens must be segregated and composted or handed over to BMC collection daily.",
		Steps: []string{
			"Collect all food scraps, fruit and vegetable peels, cooked food leftovers, garden waste in a separate bin.",
			"Ensure no plastic, glass, metal, or non-biodegradable items are mixed with wet waste.",
			"Hand it over to the BMC waste collector daily.",
		},
		Dos: []string{
			"Segregate wet waste daily.",
			"Compost kitchen and garden waste at home if possible.",
		},
		Donts: []string{
			"Mix wet waste with dry, recyclable, medical, or hazardous waste.",
			"Let wet waste accumulate for more than 1 day.",
		},
		Links: []GuideLink{
			{Title: "BMC Waste Management Guidelines", URL: "https://portal.mcgm.gov.in/irj/portal/anonymous/qlswm"},
		},
	},
	{
		ID:          "BMC-REC-1",
		Category:    model.CategoryRecyclable,
		Region:      "Maharashtra",
		City:        "Mumbai",
		Title:       "Mumbai Recyclable Waste Management",
		Description: "Clean plastic bottles, containers, and packaging materials can be recycled through BMC collection or local kabadiwala.",
		Steps: []string{
			"Empty and rinse containers with water.",
			"Remove caps and lids (recycle separately).",
			"Sort by plastic type (PET, HDPE, etc.).",
			"Give to local kabadiwala or BMC collection vehicle.",
		},
		Dos: []string{
			"Rinse containers to remove food residue.",
			"Check recycling codes 1-7.",
		},
		Donts: []string{
			"Don't include dirty or greasy containers.",
			"Don't include multilayer packaging.",
		},
		Links: []GuideLink{
			{Title: "BMC Waste Management Guidelines", URL: "https://portal.mcgm.gov.in/irj/portal/anonymous/qlswm"},
		},
	},
	{
		ID:          "MCD-DRY-1",
		Category:    model.CategoryDry,
		Region:      "Delhi",
		City:        "Delhi",
		Title:       "Delhi Dry Waste Management",
		Description: "Clean paper products and cardboard packaging for recycling through Delhi's waste management system.",
		Steps: []string{
			"Remove any plastic wrapping or tape.",
			"Flatten cardboard boxes.",
			"Sort paper by type (newspaper, magazines, etc.).",
			"Give to local kabadiwala or MCD collection.",
		},
		Dos: []string{
			"Include newspapers, magazines, books.",
			"Keep materials clean and dry.",
		},
		Donts: []string{
			"Don't include wax-coated paper.",
			"Don't mix with wet waste.",
		},
		Links: []GuideLink{
			{Title: "MCD Waste Management", URL: "https://mcdonline.nic.in/"},
		},
	},
}

// GuideFilter — параметры выборки правил.
type GuideFilter struct {
	City     string
	Category model.WasteCategory
	Query    string
}

// Guides возвращает правила, подходящие под фильтр. Пустой фильтр
// возвращает весь справочник.
func Guides(f GuideFilter) []Guide {
	res := make([]Guide, 0, len(disposalGuides))
	for _, g := range disposalGuides {
		if f.City != "" && !matchesCity(g, f.City) {
			continue
		}
		if f.Category != "" && g.Category != f.Category {
			continue
		}
		if f.Query != "" && !matchesQuery(g, f.Query) {
			continue
		}
		res = append(res, g)
	}
	return res
}

// matchesCity сравнивает по подстроке города или региона,
// чтобы "Bengaluru, Karnataka" находил записи города Bengaluru.
func matchesCity(g Guide, city string) bool {
	c := strings.ToLower(city)
	return strings.Contains(c, strings.ToLower(g.City)) ||
		strings.Contains(c, strings.ToLower(g.Region)) ||
		strings.Contains(strings.ToLower(g.City), c) ||
		strings.Contains(strings.ToLower(g.Region), c)
}

func matchesQuery(g Guide, q string) bool {
	needle := strings.ToLower(q)
	if strings.Contains(strings.ToLower(g.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Description), needle) {
		return true
	}
	return false
}
