// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"strings"

	"github.com/anipeek/anipeek/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Label renders a fixed-width field label so values line up.
func Label(s string, width int) string {
	return New().Width(width).Foreground(color.Blue).Render(s)
}

// Divider renders a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		width = 40
	}
	return Fg(color.Gray)(strings.Repeat("─", width))
}
