package model

// DefaultColor is the palette key applied when a category has none.
const DefaultColor = "amber"

// paletteHex maps category color keys to their hex values.
var paletteHex = map[string]string{
	"amber":   "#f59e0b",
	"violet":  "#8b5cf6",
	"cyan":    "#06b6d4",
	"emerald": "#10b981",
	"rose":    "#fb7185",
	"sky":     "#38bdf8",
	"orange":  "#f97316",
	"pink":    "#ec4899",
	"lime":    "#84cc16",
	"purple":  "#a855f7",
	"teal":    "#14b8a6",
	"indigo":  "#6366f1",
	"slate":   "#64748b",
}

// PaletteKeys lists the selectable category colors in display order.
var PaletteKeys = []string{
	"amber", "violet", "cyan", "emerald", "rose", "sky", "orange",
	"pink", "lime", "purple", "teal", "indigo", "slate",
}

// PaletteHex returns the hex value for a palette key, falling back to the
// default color for unknown keys.
func PaletteHex(key string) string {
	if hex, ok := paletteHex[key]; ok {
		return hex
	}
	return paletteHex[DefaultColor]
}

// ChartPalette is the fixed ten-color cycle assigned to breakdown groups
// by rank position.
var ChartPalette = []string{
	"#f59e0b", "#8b5cf6", "#06b6d4", "#34d399", "#fb7185",
	"#38bdf8", "#f97316", "#ec4899", "#a3e635", "#e879f9",
}

// ChartColor returns the chart color for a group at the given rank.
func ChartColor(rank int) string {
	return ChartPalette[rank%len(ChartPalette)]
}
