package types

// Category is a user-defined grouping for items, with a manual display
// order and an optional color token.
type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sortOrder"`
	Color      string `json:"color,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// CategoryPatch describes a partial update to a Category.
// Nil fields are left unchanged.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// DefaultCategory describes a category seeded on first run.
type DefaultCategory struct {
	Name  string
	Color string
}

// DefaultCategories is the ordered list of categories created when the
// store is seeded on an empty database.
var DefaultCategories = []DefaultCategory{
	{"Home", "amber"},
	{"Health", "emerald"},
	{"Fitness", "sky"},
	{"Chores", "violet"},
	{"Social", "rose"},
	{"Personal", "slate"},
}

// FallbackColor is assigned when a category name has no palette entry.
const FallbackColor = "gray"

// PaletteColorFor returns the default palette color for a category name,
// keyed by the name's position in DefaultCategories. Names outside the
// default list get FallbackColor.
func PaletteColorFor(name string) string {
	for _, dc := range DefaultCategories {
		if dc.Name == name {
			return dc.Color
		}
	}
	return FallbackColor
}
