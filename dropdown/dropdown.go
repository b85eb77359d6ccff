// Package dropdown implements the state machine behind a searchable
// single-select widget: a catalog of labeled items, an optional filter typed
// by the user, one selected item, and an open/closed flag. The package is
// deliberately free of I/O and rendering; presentation shells (see the tui
// package) dispatch Intents and draw whatever the resulting State describes.
package dropdown

// Item pairs a display label with an opaque caller payload. The label is the
// search key and the identity key for "is this row selected" comparisons; the
// payload is caller data the widget never inspects.
type Item[T any] struct {
	Label   string
	Payload T
}

// State fully describes one widget instance. States are value types. A State
// is never mutated in place: Transition takes a State and returns the next
// one, so callers can keep, compare or discard old states freely.
type State[T any] struct {
	// Items is the full catalog, in the order rows are displayed.
	Items []Item[T]

	// VisibleItems is the subset of Items matching SearchValue, in catalog
	// order. It is always derived from Items by filtering, never edited on
	// its own. When SearchValue is empty it is Items itself.
	VisibleItems []Item[T]

	// Value is the current selection, nil when nothing is selected.
	Value *Item[T]

	// IsOpen reports whether the item list is expanded.
	IsOpen bool

	// SearchValue is the current filter text; empty means no filter.
	SearchValue string

	// CanClear is fixed at construction and gates the clear affordance.
	CanClear bool
}

// New builds a widget state over the given catalog with an optional default
// selection. CanClear is enabled. Whether defaultValue actually occurs in
// items is a caller contract: a stray default is kept as-is and simply never
// matches any rendered row as selected.
func New[T any](items []Item[T], defaultValue *Item[T]) State[T] {
	return State[T]{
		Items:        items,
		VisibleItems: items,
		Value:        defaultValue,
		CanClear:     true,
	}
}

// Empty builds a widget with no catalog, no selection and no clear
// affordance. Items arrive later via a ReplaceItems intent.
func Empty[T any]() State[T] {
	return State[T]{}
}

// Selected returns the payload of the current selection. The second return
// is false when nothing is selected.
func (s State[T]) Selected() (T, bool) {
	if s.Value == nil {
		var zero T
		return zero, false
	}
	return s.Value.Payload, true
}

// SelectedLabel returns the label of the current selection, or "" when
// nothing is selected.
func (s State[T]) SelectedLabel() string {
	if s.Value == nil {
		return ""
	}
	return s.Value.Label
}

// IsSelected reports whether the given item would be shown as the current
// selection. Items are compared by label only, so two items sharing a label
// are indistinguishable here regardless of payload.
func (s State[T]) IsSelected(item Item[T]) bool {
	return s.Value != nil && s.Value.Label == item.Label
}

// ReplaceItems swaps the catalog and selection in one step. The current
// search text is re-applied against the new catalog, so a stale filter keeps
// narrowing the rows until the user edits it. This is the only sanctioned way
// to change the catalog mid-session.
func (s State[T]) ReplaceItems(items []Item[T], selection *Item[T]) State[T] {
	return Transition[T](ReplaceItems[T]{Items: items, Selection: selection}, s)
}
