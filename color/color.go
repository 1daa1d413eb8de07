// Package color names the ANSI colors used by CLI output.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Gray is used for secondary text such as URLs.
var Gray = New("#808080")
