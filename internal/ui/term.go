package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Available: green for days and weeks with a report
	colorAvailable = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Warnings: yellow to make them pop
	colorWarn = color.New(color.FgYellow)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatAvailable formats text for entries that have a report.
func formatAvailable(s string) string {
	return colorAvailable.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatWarn formats warning text.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}
