package dropdown

import "strings"

// Transition maps (intent, state) to the next state. It is total: every
// intent is meaningful in every state and nothing can fail. Intents are
// applied one at a time, in the order the shell raises them.
func Transition[T any](intent Intent[T], s State[T]) State[T] {
	switch in := intent.(type) {
	case ToggleOpen[T]:
		s.IsOpen = !s.IsOpen

	case Select[T]:
		item := in.Item
		s.Value = &item
		s.IsOpen = false
		s.SearchValue = ""
		s.VisibleItems = s.Items

	case Clear[T]:
		s.Value = nil

	case Search[T]:
		s.SearchValue = in.Query
		s.VisibleItems = filterByLabel(s.Items, in.Query)

	case ConfirmSearch[T]:
		if len(s.VisibleItems) > 0 {
			item := s.VisibleItems[0]
			s.Value = &item
		}
		s.IsOpen = false
		s.SearchValue = ""
		s.VisibleItems = s.Items

	case ReplaceItems[T]:
		s.Items = in.Items
		s.Value = in.Selection
		s.VisibleItems = filterByLabel(s.Items, s.SearchValue)
	}

	return s
}

// filterByLabel returns the items whose label contains query as a
// case-insensitive substring, preserving catalog order. Matching is a plain
// lowercase-fold substring test, not locale-aware collation, and there is no
// ranking. An empty query returns the catalog slice itself.
func filterByLabel[T any](items []Item[T], query string) []Item[T] {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var matched []Item[T]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), q) {
			matched = append(matched, item)
		}
	}
	return matched
}
