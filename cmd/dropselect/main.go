package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dropselect/config"
	"dropselect/dropdown"
	"dropselect/eventbus"
	"dropselect/tui"
)

// appKeyMap extends the widget bindings with application-level keys.
type appKeyMap struct {
	widget tui.KeyMap
	Detail key.Binding
	Quit   key.Binding
}

func newAppKeyMap(widget tui.KeyMap) appKeyMap {
	return appKeyMap{
		widget: widget,
		Detail: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "view detail"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.Detail, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// pagerDoneMsg reports the outcome of a pager run.
type pagerDoneMsg struct {
	err error
}

type model struct {
	widget tui.Widget[config.CatalogEntry]
	help   help.Model
	keys   appKeyMap
	pager  *pagerOps
	status string

	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

func newModel(widget tui.Widget[config.CatalogEntry], pager *pagerOps) *model {
	return &model{
		widget: widget,
		help:   help.New(),
		keys:   newAppKeyMap(widget.KeyMap()),
		pager:  pager,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

func (m *model) Init() tea.Cmd {
	return m.widget.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pagerDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("pager error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Detail):
			return m, m.viewDetailCmd()
		}
	}

	var cmd tea.Cmd
	m.widget, cmd = m.widget.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	var status string
	if entry, ok := m.widget.Selected(); ok {
		status = fmt.Sprintf("selected: %s — ctrl+o for detail", entry.Label)
	} else {
		status = "nothing selected"
	}
	if m.status != "" {
		status = m.status
	}

	return m.titleStyle.Render("dropselect demo") + "\n" +
		m.widget.View() + "\n" +
		m.statusStyle.Render(status) + "\n" +
		m.help.View(m.keys)
}

// viewDetailCmd opens the selected entry in the pager.
func (m *model) viewDetailCmd() tea.Cmd {
	entry, ok := m.widget.Selected()
	if !ok {
		m.status = "nothing selected to view"
		return nil
	}
	return func() tea.Msg {
		content := fmt.Sprintf("# %s\n\n%s\n", entry.Label, entry.Detail)
		return pagerDoneMsg{err: m.pager.showDetail(content)}
	}
}

// catalogItems converts config entries into widget items; the whole entry
// rides along as the payload.
func catalogItems(entries []config.CatalogEntry) []dropdown.Item[config.CatalogEntry] {
	items := make([]dropdown.Item[config.CatalogEntry], 0, len(entries))
	for _, entry := range entries {
		items = append(items, dropdown.Item[config.CatalogEntry]{
			Label:   entry.Label,
			Payload: entry,
		})
	}
	return items
}

func main() {
	// Set up logging
	logFile, err := os.OpenFile("dropselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Log widget activity through the event bus
	bus := eventbus.New()
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.Event) {
		log.Printf("selection changed: %s", e.(eventbus.SelectionChangedEvent).Label)
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(eventbus.Event) {
		log.Printf("selection cleared")
	})
	bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.Event) {
		ev := e.(eventbus.SearchChangedEvent)
		log.Printf("search %q: %d matches", ev.Query, ev.Matches)
	})

	items := catalogItems(cfg.Catalog)
	var state dropdown.State[config.CatalogEntry]
	if cfg.UI.AllowClear {
		state = dropdown.New(items, nil)
	} else {
		state = dropdown.Empty[config.CatalogEntry]().ReplaceItems(items, nil)
	}

	widget := tui.New(state, cfg.UI.Placeholder, cfg.UI.MaxVisibleRows, bus)
	pager := &pagerOps{}
	m := newModel(widget, pager)

	p := tea.NewProgram(m, tea.WithAltScreen())
	pager.program = p

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
