package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Deliberately small: status glyphs, values, and muted
// detail text cover everything the export and cache commands print.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// Styles shared with the interactive group picker.
var (
	// StyleTitle renders section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleSuccess renders confirmation text.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders data values such as paths and counts.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

var (
	glyphOK     = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	glyphFail   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	glyphStatus = lipgloss.NewStyle().Foreground(colorGray).Render("›")
	glyphArrow  = "→"

	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCached  = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh   = lipgloss.NewStyle().Foreground(colorGray)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// printSuccess prints a checked status line.
func printSuccess(format string, args ...any) {
	fmt.Println(glyphOK + " " + fmt.Sprintf(format, args...))
}

// printError prints a failed status line.
func printError(format string, args ...any) {
	fmt.Println(glyphFail + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a neutral status line.
func printInfo(format string, args ...any) {
	fmt.Println(glyphStatus + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted detail line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(glyphArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value in two aligned columns.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints the built graph's size and whether the graph stage came
// out of the cache.
func printStats(nodes, edges int, cached bool) {
	origin := styleFresh.Render("rebuilt")
	if cached {
		origin = styleCached.Render("cached")
	}
	size := fmt.Sprintf("%d nodes · %d edges", nodes, edges)
	fmt.Println("  " + StyleDim.Render(size+" · ") + origin)
}
