package domain

// ThemeColors drives presentational styling only; no business logic
// reads these values.
type ThemeColors struct {
	Name       string `json:"name"`
	Accent     string `json:"accent"`
	Foreground string `json:"foreground"`
	Gradient   string `json:"gradient"`
}

const DefaultThemeCategory = "fashion"

var CategoryThemes = map[string]ThemeColors{
	"fashion": {
		Name:       "Fashion (Clothes)",
		Accent:     "#916a0a",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #916a0a 0%, #DAA520 100%)",
	},
	"electronics": {
		Name:       "Electronics",
		Accent:     "#aab602",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #aab602 0%, #589960 100%)",
	},
	"children": {
		Name:       "Children's Wear",
		Accent:     "#fa60e0",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #fa60e0 0%, #93C5FD 100%)",
	},
	"accessories": {
		Name:       "Accessories",
		Accent:     "#a87c0b",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #a87c0b 0%, #f8901a 100%)",
	},
	"footwear": {
		Name:       "Footwear",
		Accent:     "#0F62FE",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #0F62FE 0%, #023275 100%)",
	},
	"sprays": {
		Name:       "Fragrances",
		Accent:     "#b80b0b",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #b80b0b 0%, #FFD700 100%)",
	},
	"smartwatches": {
		Name:       "Smart Watches",
		Accent:     "#0F62FE",
		Foreground: "#0B0B0B",
		Gradient:   "linear-gradient(135deg, #0F62FE 0%, #0f0f0f 100%)",
	},
}

// ThemeFor falls back to the default palette for unknown categories.
func ThemeFor(category string) ThemeColors {
	if t, ok := CategoryThemes[category]; ok {
		return t
	}
	return CategoryThemes[DefaultThemeCategory]
}
