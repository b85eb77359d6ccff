package views

import (
	"fmt"
	"strings"
)

// NoMatchMessage is shown when a non-empty query filters everything out.
const NoMatchMessage = "No match found"

// Renderer draws frames. maxRows caps how many catalog rows a single render
// shows; the state underneath is never truncated, the overflow is just
// summarized in one line.
type Renderer struct {
	styles      *Styles
	placeholder string
	maxRows     int
}

// NewRenderer creates a new renderer. placeholder is shown on the header
// line while nothing is selected; maxRows <= 0 means no cap.
func NewRenderer(placeholder string, maxRows int) *Renderer {
	return &Renderer{
		styles:      NewStyles(),
		placeholder: placeholder,
		maxRows:     maxRows,
	}
}

// Render draws the whole widget for the given frame.
func (r *Renderer) Render(f Frame) string {
	var b strings.Builder

	b.WriteString(r.RenderHeader(f))
	if !f.IsOpen {
		return b.String()
	}

	b.WriteString("\n")
	if f.SearchValue != "" {
		b.WriteString(r.styles.Search.Render("/ "+f.SearchValue) + "\n")
	}
	b.WriteString(r.RenderList(f))
	return b.String()
}

// RenderHeader draws the selected-value line: arrow glyph, selection or
// placeholder, and the clear affordance when it is visible.
func (r *Renderer) RenderHeader(f Frame) string {
	arrow := ArrowClosed
	if f.IsOpen {
		arrow = ArrowOpen
	}

	label := r.styles.Placeholder.Render(r.placeholder)
	if f.SelectedLabel != "" {
		label = r.styles.Header.Render(f.SelectedLabel)
	}

	line := arrow + " " + label
	if f.ShowClear {
		line += " " + r.styles.Clear.Render("[x]")
	}
	return line
}

// RenderList draws the filtered rows, or the no-match indicator.
func (r *Renderer) RenderList(f Frame) string {
	if f.NoMatch {
		return r.styles.NoMatch.Render(NoMatchMessage)
	}

	rows := f.Rows
	overflow := 0
	if r.maxRows > 0 && len(rows) > r.maxRows {
		overflow = len(rows) - r.maxRows
		rows = rows[:r.maxRows]
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		if row.Selected {
			lines = append(lines, r.styles.RowSelected.Render("› "+row.Label))
		} else {
			lines = append(lines, r.styles.Row.Render(row.Label))
		}
	}
	if overflow > 0 {
		lines = append(lines, r.styles.Overflow.Render(fmt.Sprintf("… %d more", overflow)))
	}
	return strings.Join(lines, "\n")
}
