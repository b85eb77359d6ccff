package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Arrow glyphs on the selected-value line.
const (
	ArrowOpen   = "▲"
	ArrowClosed = "▼"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Header      lipgloss.Style
	Placeholder lipgloss.Style
	Clear       lipgloss.Style
	Search      lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	NoMatch     lipgloss.Style
	Overflow    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Clear:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		RowSelected: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(lipgloss.Color("42")),
		NoMatch:  lipgloss.NewStyle().Faint(true).Italic(true),
		Overflow: lipgloss.NewStyle().Faint(true),
	}
}
