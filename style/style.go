// Package style composes lipgloss styles for CLI output.
package style

import (
	"github.com/anisan-cli/anitaku/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner used for section headings.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}

// Tag renders s as a small colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}
