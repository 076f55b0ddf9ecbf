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

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// High energy tasks: yellow to make them pop
	colorHigh = color.New(color.FgYellow)

	// Low energy tasks: dim/grey
	colorLow = color.New(color.FgCyan, color.Faint)
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

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatHigh formats text for high-energy tasks.
func formatHigh(s string) string {
	return colorHigh.Sprint(s)
}

// formatLow formats text for low-energy tasks.
func formatLow(s string) string {
	return colorLow.Sprint(s)
}
