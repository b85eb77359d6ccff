package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropselect/dropdown"
	"dropselect/eventbus"
)

func testItems() []dropdown.Item[int] {
	return []dropdown.Item[int]{
		{Label: "Apple", Payload: 1},
		{Label: "Banana", Payload: 2},
		{Label: "Avocado", Payload: 3},
	}
}

func keyTab() tea.Msg   { return tea.KeyMsg{Type: tea.KeyTab} }
func keyEnter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyClear() tea.Msg { return tea.KeyMsg{Type: tea.KeyCtrlX} }

func typeString(t *testing.T, w Widget[int], s string) Widget[int] {
	t.Helper()
	for _, r := range s {
		w, _ = w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return w
}

func TestToggleKeyFlipsOpen(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)

	w, _ = w.Update(keyTab())
	assert.True(t, w.State().IsOpen)

	w, _ = w.Update(keyTab())
	assert.False(t, w.State().IsOpen)
}

func TestTypingFiltersWhileOpen(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)
	w, _ = w.Update(keyTab())

	w = typeString(t, w, "av")

	st := w.State()
	assert.Equal(t, "av", st.SearchValue)
	require.Len(t, st.VisibleItems, 1)
	assert.Equal(t, "Avocado", st.VisibleItems[0].Label)
}

func TestTypingIgnoredWhileClosed(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)

	w = typeString(t, w, "av")

	st := w.State()
	assert.Empty(t, st.SearchValue)
	assert.Equal(t, st.Items, st.VisibleItems)
}

func TestEnterConfirmsTopFilteredMatch(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "av")

	w, _ = w.Update(keyEnter())

	st := w.State()
	assert.False(t, st.IsOpen)
	assert.Empty(t, st.SearchValue)
	payload, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, payload)

	// The next open starts from an unfiltered list and a blank input.
	w, _ = w.Update(keyTab())
	assert.Equal(t, w.State().Items, w.State().VisibleItems)
	assert.NotContains(t, w.View(), "av")
}

func TestEnterWithoutMatchesKeepsSelection(t *testing.T) {
	def := &dropdown.Item[int]{Label: "Apple", Payload: 1}
	w := New(dropdown.New(testItems(), def), "Pick", 0, nil)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "zzz")

	w, _ = w.Update(keyEnter())

	payload, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, payload)
}

func TestClearKeyDropsSelection(t *testing.T) {
	def := &dropdown.Item[int]{Label: "Apple", Payload: 1}
	w := New(dropdown.New(testItems(), def), "Pick", 0, nil)

	w, _ = w.Update(keyClear())

	_, ok := w.Selected()
	assert.False(t, ok)
}

func TestClearKeyIgnoredWhenNotAllowed(t *testing.T) {
	w := New(dropdown.Empty[int](), "Pick", 0, nil)
	w = w.ReplaceItems(testItems(), &dropdown.Item[int]{Label: "Apple", Payload: 1})

	w, _ = w.Update(keyClear())

	payload, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, payload)
}

func TestChooseCommitsItem(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "ban")

	w = w.Choose(w.State().VisibleItems[0])

	st := w.State()
	assert.False(t, st.IsOpen)
	assert.Empty(t, st.SearchValue)
	payload, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, payload)
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New()
	var types []eventbus.EventType
	record := func(e eventbus.Event) { types = append(types, e.Type()) }
	bus.Subscribe(eventbus.EventOpenToggled, record)
	bus.Subscribe(eventbus.EventSearchChanged, record)
	bus.Subscribe(eventbus.EventSelectionChanged, record)
	bus.Subscribe(eventbus.EventSelectionCleared, record)
	bus.Subscribe(eventbus.EventItemsReplaced, record)

	w := New(dropdown.New(testItems(), nil), "Pick", 0, bus)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "a")
	w, _ = w.Update(keyEnter())
	w, _ = w.Update(keyClear())
	w = w.ReplaceItems(testItems()[:1], nil)

	assert.Equal(t, []eventbus.EventType{
		eventbus.EventOpenToggled,
		eventbus.EventSearchChanged,
		eventbus.EventSelectionChanged,
		eventbus.EventSelectionCleared,
		eventbus.EventItemsReplaced,
	}, types)
}

func TestEnterWithoutMatchesPublishesNoSelection(t *testing.T) {
	bus := eventbus.New()
	var changed int
	bus.Subscribe(eventbus.EventSelectionChanged, func(eventbus.Event) { changed++ })

	w := New(dropdown.New(testItems(), nil), "Pick", 0, bus)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "zzz")
	w, _ = w.Update(keyEnter())

	assert.Zero(t, changed)
}

func TestViewClosedVersusOpen(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)

	closed := w.View()
	assert.Contains(t, closed, "Pick")
	assert.NotContains(t, closed, "Apple")

	w, _ = w.Update(keyTab())
	open := w.View()
	assert.Contains(t, open, "Apple")
	assert.Contains(t, open, "Banana")
	assert.Contains(t, open, "Avocado")
}

func TestViewShowsNoMatchMessage(t *testing.T) {
	w := New(dropdown.New(testItems(), nil), "Pick", 0, nil)
	w, _ = w.Update(keyTab())
	w = typeString(t, w, "qqq")

	view := w.View()
	assert.Contains(t, view, "No match found")
	for _, item := range testItems() {
		assert.False(t, strings.Contains(view, item.Label))
	}
}
