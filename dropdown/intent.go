package dropdown

// Intent is one user-level operation raised by a presentation shell. The set
// of intents is closed: only the types in this file implement it, and
// Transition handles every one of them, in any state.
type Intent[T any] interface {
	isIntent()
}

// ToggleOpen expands or collapses the item list.
type ToggleOpen[T any] struct{}

// Select commits an item as the selection. It also collapses the list and
// resets any active filter, so the next open shows the full catalog.
type Select[T any] struct {
	Item Item[T]
}

// Clear drops the current selection. Nothing else changes: the list stays
// open or closed as it was, and an active filter keeps filtering.
type Clear[T any] struct{}

// Search replaces the filter text. An empty query restores the full catalog.
type Search[T any] struct {
	Query string
}

// ConfirmSearch accepts the top filtered match, if there is one, and
// collapses the list either way. It is how "press Enter to take the first
// hit" behaves.
type ConfirmSearch[T any] struct{}

// ReplaceItems swaps the whole catalog and the selection. The filter text is
// kept and re-applied against the new items.
type ReplaceItems[T any] struct {
	Items     []Item[T]
	Selection *Item[T]
}

func (ToggleOpen[T]) isIntent()    {}
func (Select[T]) isIntent()        {}
func (Clear[T]) isIntent()         {}
func (Search[T]) isIntent()        {}
func (ConfirmSearch[T]) isIntent() {}
func (ReplaceItems[T]) isIntent()  {}
