// Package tui wraps the dropdown state machine in a Bubble Tea component.
// The widget owns a State, translates terminal input into intents, renders
// through dropdown/views, and reports activity on an event bus. It follows
// the bubbles component convention: Update returns the component itself, so
// a host model embeds a Widget rather than running it as a program.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dropselect/dropdown"
	"dropselect/dropdown/views"
	"dropselect/eventbus"
)

// Widget is a searchable single-select component over payloads of type T.
type Widget[T any] struct {
	state    dropdown.State[T]
	input    textinput.Model
	renderer *views.Renderer
	bus      eventbus.Bus // may be nil; then nothing is published
	keys     KeyMap
}

// New builds a widget around an existing state. placeholder is shown while
// nothing is selected; maxRows caps rendered rows (0 = no cap); bus may be
// nil when the host does not care about events.
func New[T any](state dropdown.State[T], placeholder string, maxRows int, bus eventbus.Bus) Widget[T] {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "type to search"
	input.Focus()

	return Widget[T]{
		state:    state,
		input:    input,
		renderer: views.NewRenderer(placeholder, maxRows),
		bus:      bus,
		keys:     DefaultKeyMap(),
	}
}

// Init implements tea.Model-style initialization for hosts that want the
// search cursor to blink.
func (w Widget[T]) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current widget state for inspection.
func (w Widget[T]) State() dropdown.State[T] {
	return w.state
}

// Selected returns the selected payload, if any.
func (w Widget[T]) Selected() (T, bool) {
	return w.state.Selected()
}

// KeyMap returns the active key bindings, e.g. for a host help bar.
func (w Widget[T]) KeyMap() KeyMap {
	return w.keys
}

// Update handles a Bubble Tea message and returns the next widget.
func (w Widget[T]) Update(msg tea.Msg) (Widget[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch {
	case key.Matches(keyMsg, w.keys.Confirm):
		return w.confirm(), nil

	case key.Matches(keyMsg, w.keys.Toggle):
		w.state = dropdown.Transition[T](dropdown.ToggleOpen[T]{}, w.state)
		w.publish(eventbus.OpenToggledEvent{IsOpen: w.state.IsOpen})
		return w, nil

	case key.Matches(keyMsg, w.keys.Clear):
		// Mirrors the clear affordance: present only when clearing is
		// allowed and something is selected.
		if w.state.CanClear && w.state.Value != nil {
			w.state = dropdown.Transition[T](dropdown.Clear[T]{}, w.state)
			w.publish(eventbus.SelectionClearedEvent{})
		}
		return w, nil
	}

	// Remaining keys edit the search text, but only while the list is
	// expanded; a collapsed widget shows no input to type into.
	if !w.state.IsOpen {
		return w, nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if query := w.input.Value(); query != w.state.SearchValue {
		w.state = dropdown.Transition[T](dropdown.Search[T]{Query: query}, w.state)
		w.publish(eventbus.SearchChangedEvent{
			Query:   query,
			Matches: len(w.state.VisibleItems),
		})
	}
	return w, cmd
}

// Choose commits an item as the selection, the key-driven equivalent of
// clicking a row.
func (w Widget[T]) Choose(item dropdown.Item[T]) Widget[T] {
	w.state = dropdown.Transition[T](dropdown.Select[T]{Item: item}, w.state)
	w.input.Reset()
	w.publish(eventbus.SelectionChangedEvent{Label: item.Label})
	return w
}

// ReplaceItems swaps the catalog and selection mid-session.
func (w Widget[T]) ReplaceItems(items []dropdown.Item[T], selection *dropdown.Item[T]) Widget[T] {
	w.state = w.state.ReplaceItems(items, selection)
	w.publish(eventbus.ItemsReplacedEvent{Count: len(items)})
	return w
}

// View renders the widget: header line always, then the live search input
// and the filtered rows while the list is expanded.
func (w Widget[T]) View() string {
	frame := views.Snapshot(w.state)

	var b strings.Builder
	b.WriteString(w.renderer.RenderHeader(frame))
	if !frame.IsOpen {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(w.input.View())
	b.WriteString("\n")
	b.WriteString(w.renderer.RenderList(frame))
	return b.String()
}

func (w Widget[T]) confirm() Widget[T] {
	hadMatch := len(w.state.VisibleItems) > 0
	w.state = dropdown.Transition[T](dropdown.ConfirmSearch[T]{}, w.state)
	w.input.Reset()
	if hadMatch {
		w.publish(eventbus.SelectionChangedEvent{Label: w.state.SelectedLabel()})
	}
	return w
}

func (w Widget[T]) publish(event eventbus.Event) {
	if w.bus != nil {
		w.bus.Publish(event)
	}
}
