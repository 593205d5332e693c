package models

// Category is the fixed closed-set tag on a note.
type Category string

// The closed category set. No other value is representable in the store.
const (
	CategoryStoicism     Category = "STOICISM"
	CategoryDailySummary Category = "DAILY_SUMMARY"
	CategoryThankfulness Category = "THANKFULNESS"
	CategoryAnalysis     Category = "ANALYSIS"
	CategoryOther        Category = "OTHER"
)

// CategoryInfo bundles everything derived from a category. Keeping display
// name, description and color in a single table guarantees the sets cannot
// drift apart.
type CategoryInfo struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var categoryTable = map[Category]CategoryInfo{
	CategoryStoicism: {
		DisplayName: "Stoicism",
		Description: "Reflect on what you can control and accept what you cannot.",
		Color:       "#90CAF9",
	},
	CategoryDailySummary: {
		DisplayName: "Daily Summary",
		Description: "What's one thing you learned today? How did your day go?",
		Color:       "#A5D6A7",
	},
	CategoryThankfulness: {
		DisplayName: "Thankfulness",
		Description: "List three things you are grateful for right now.",
		Color:       "#FFF59D",
	},
	CategoryAnalysis: {
		DisplayName: "Analysis",
		Description: "Analyze a situation objectively. What are the facts?",
		Color:       "#CE93D8",
	},
	CategoryOther: {
		DisplayName: "Other",
		Description: "General notes and thoughts without a specific theme.",
		Color:       "#E0E0E0",
	},
}

// Categories returns the closed set in stable display order.
func Categories() []Category {
	return []Category{
		CategoryStoicism,
		CategoryDailySummary,
		CategoryThankfulness,
		CategoryAnalysis,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Info returns the display record for c. Unknown categories fall back to
// the OTHER record so rendering never breaks on legacy data.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryTable[c]; ok {
		return info
	}
	return categoryTable[CategoryOther]
}

// ParseCategory maps a stored symbolic name to its Category. The second
// return value is false when the name is not in the closed set.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	return c, c.Valid()
}
