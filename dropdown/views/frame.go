// Package views turns a dropdown state into terminal output. The projection
// into a Frame is a pure function of the state, so "what would be shown" is
// testable without a terminal; the Renderer then draws a Frame with lipgloss.
package views

import "dropselect/dropdown"

// Row is one displayed catalog entry.
type Row struct {
	Label string
	// Selected marks the row whose label equals the selected label, for
	// highlighting only.
	Selected bool
}

// Frame is everything the widget would show, as plain data.
type Frame struct {
	IsOpen        bool
	SelectedLabel string // "" when nothing is selected
	SearchValue   string
	Rows          []Row // the visible (filtered) items, catalog order
	// ShowClear is the clear-affordance visibility: clearing must be allowed
	// and something must actually be selected.
	ShowClear bool
	// NoMatch distinguishes "filter matched nothing" from "no catalog": it is
	// set only when a non-empty query yields zero rows.
	NoMatch bool
}

// Snapshot projects a widget state into its Frame.
func Snapshot[T any](s dropdown.State[T]) Frame {
	f := Frame{
		IsOpen:        s.IsOpen,
		SelectedLabel: s.SelectedLabel(),
		SearchValue:   s.SearchValue,
	}
	f.ShowClear = s.CanClear && f.SelectedLabel != ""
	f.NoMatch = len(s.VisibleItems) == 0 && s.SearchValue != ""
	for _, item := range s.VisibleItems {
		f.Rows = append(f.Rows, Row{
			Label:    item.Label,
			Selected: s.IsSelected(item),
		})
	}
	return f
}
