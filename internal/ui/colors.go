package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#1DB954", "#FF5F5F", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	control  lipgloss.Style
	disabled lipgloss.Style
	link     lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
}

// NewPalette builds the stylesheet from title, accent, error, warning and muted colors.
func NewPalette(title, accent, errColor, warn, muted string) *Palette {
	return &Palette{
		title:    NewBold(title).MarginBottom(1),
		control:  NewBold(accent).Padding(0, 1),
		disabled: NewStyle(muted).Faint(true).Padding(0, 1),
		link:     NewStyle(accent).Underline(true),
		err:      NewBold(errColor),
		warn:     NewStyle(warn),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}
