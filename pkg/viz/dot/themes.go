package dot

import "github.com/azmapper/azmap/pkg/model"

// Palette holds the colors and font one theme applies to the emitted
// document.
type Palette struct {
	Background string
	NodeFill   string
	EdgeColor  string
	FontColor  string
	FontName   string
	FontSize   int

	// PlainNodeFill is the background of HTML table node labels.
	PlainNodeFill string
	// LegendFill is the background of the legend cluster.
	LegendFill string
	// PlaceholderFill and CrossTenantFill shade externally referenced nodes.
	PlaceholderFill string
	CrossTenantFill string
}

var palettes = map[model.Theme]Palette{
	model.ThemeLight: {
		Background:      "white",
		NodeFill:        "lightblue",
		EdgeColor:       "black",
		FontColor:       "black",
		FontName:        "Arial",
		FontSize:        9,
		PlainNodeFill:   "white",
		LegendFill:      "white",
		PlaceholderFill: "#fff2e6",
		CrossTenantFill: "#ffe6e6",
	},
	model.ThemeDark: {
		Background:      "black",
		NodeFill:        "darkgray",
		EdgeColor:       "white",
		FontColor:       "black",
		FontName:        "Arial",
		FontSize:        9,
		PlainNodeFill:   "darkgray",
		LegendFill:      "gray",
		PlaceholderFill: "#4d2d1a",
		CrossTenantFill: "#4d1a1a",
	},
	model.ThemeHighContrast: {
		Background:      "black",
		NodeFill:        "white",
		EdgeColor:       "yellow",
		FontColor:       "black",
		FontName:        "Arial",
		FontSize:        10,
		PlainNodeFill:   "white",
		LegendFill:      "white",
		PlaceholderFill: "#4d2d1a",
		CrossTenantFill: "#4d1a1a",
	},
}

// PaletteFor returns the palette for a theme, falling back to light for
// unknown values.
func PaletteFor(t model.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[model.ThemeLight]
}
