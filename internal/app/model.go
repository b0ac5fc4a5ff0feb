package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"waystyle/internal/store"
	"waystyle/internal/ui"
	"waystyle/internal/watch"
)

type FocusArea int

const (
	FocusSidebar FocusArea = iota
	FocusContent
)

// selfSaveWindow is how long after our own Save a file event on the
// stylesheet is treated as self-inflicted and ignored.
const selfSaveWindow = time.Second

type Model struct {
	pages            map[PageID]Page
	activePage       PageID
	focus            FocusArea
	width            int
	height           int
	showHelp         bool
	selectedSelector string
	picker           *Picker
	store            *store.Store
	watching         bool
}

func New(pages map[PageID]Page, st *store.Store) Model {
	m := Model{
		pages: pages,
		store: st,
		// Init arms the watcher unconditionally.
		watching: true,
	}
	if sels := st.Selectors(); len(sels) > 0 {
		m.selectedSelector = sels[0]
	}
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.pages {
		if cmd := p.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, watch.File(m.store.Path()))
	if m.selectedSelector != "" {
		sel := m.selectedSelector
		cmds = append(cmds, func() tea.Msg { return SelectorChosenMsg{Selector: sel} })
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := m.width - sidebarWidth
		contentHeight := m.height - 2 - 1 // status bar + top bar
		for _, p := range m.pages {
			p.SetSize(contentWidth, contentHeight)
		}
		return m, nil

	case watch.FileChangedMsg:
		// Our own Save also fires the watcher; only external writes
		// should replace the in-memory document.
		if m.store.SavedWithin(selfSaveWindow) {
			return m, watch.File(m.store.Path())
		}
		if err := m.store.Load(); err != nil {
			return m, watch.File(m.store.Path())
		}
		broadcast := m.broadcast(StylesReloadedMsg{})
		return m, tea.Batch(broadcast, watch.File(m.store.Path()))

	case watch.ErrorMsg:
		// Typically the stylesheet does not exist yet. Remember that
		// the watcher is down so the next save can re-arm it.
		m.watching = false
		return m, nil

	case PickerSelectedMsg:
		m.selectedSelector = msg.Value
		m.picker = nil
		return m, m.broadcast(SelectorChosenMsg{Selector: msg.Value})

	case PickerClosedMsg:
		m.picker = nil
		return m, nil

	case SelectorChosenMsg:
		// Pages can also switch the current rule (e.g. after adding one).
		m.selectedSelector = msg.Selector
		return m, m.broadcast(msg)

	case StyleSavedMsg:
		broadcast := m.broadcast(msg)
		if m.watching {
			return m, broadcast
		}
		// The save just created the file the watcher failed on.
		m.watching = true
		return m, tea.Batch(broadcast, watch.File(m.store.Path()))

	case tea.KeyMsg:
		// When the picker is open, forward all keys to it.
		if m.picker != nil {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}

		// When a page has an active text input, forward all keys
		// directly to the page; only ctrl+c still quits.
		if m.focus == FocusContent {
			if ic, ok := m.pages[m.activePage].(InputCapturer); ok && ic.InputCaptured() {
				if msg.String() == "ctrl+c" {
					return m, tea.Quit
				}
				page := m.pages[m.activePage]
				newPage, cmd := page.Update(msg)
				m.pages[m.activePage] = newPage
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, GlobalKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, GlobalKeys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, GlobalKeys.ToggleFocus):
			if m.focus == FocusSidebar {
				m.focus = FocusContent
				return m, nil
			}
			m.focus = FocusSidebar
			return m, nil
		}

		if m.focus == FocusSidebar {
			if key.Matches(msg, GlobalKeys.RulePicker) {
				m.picker = NewPicker("Select Rule")
				contentWidth := m.width - sidebarWidth
				contentHeight := m.height - 2 - 1
				m.picker.SetSize(contentWidth, contentHeight)
				var items []PickerItem
				for _, sel := range m.store.Selectors() {
					items = append(items, PickerItem{Label: sel, Value: sel})
				}
				m.picker.SetItems(items)
				return m, nil
			}
			switch msg.String() {
			case "up":
				m.prevPage()
				return m, nil
			case "down":
				m.nextPage()
				return m, nil
			case "enter", "right":
				m.focus = FocusContent
				return m, nil
			}
		} else if msg.String() == "left" {
			m.focus = FocusSidebar
			return m, nil
		}
	}

	// Key messages: only forward to the active page when content is
	// focused.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if m.focus != FocusContent {
			return m, nil
		}
		page := m.pages[m.activePage]
		newPage, cmd := page.Update(msg)
		m.pages[m.activePage] = newPage
		return m, cmd
	}

	// Non-key messages (command results, broadcasts): forward to all
	// pages so responses reach the page that initiated the command.
	var cmds []tea.Cmd
	for id, page := range m.pages {
		newPage, cmd := page.Update(msg)
		m.pages[id] = newPage
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentWidth := m.width - sidebarWidth
	contentHeight := m.height - 2 - 1

	page := m.pages[m.activePage]

	topBar := renderTopBar(m.store.Path(), m.selectedSelector, m.store.Dirty(), m.width, m.focus == FocusSidebar)
	sidebar := renderSidebar(PageOrder, m.activePage, m.pages, contentHeight, m.focus == FocusSidebar)
	content := ui.ContentStyle.
		Width(contentWidth).
		Height(contentHeight).
		Render(page.View())

	if m.picker != nil {
		m.picker.SetSize(contentWidth, contentHeight)
		content = lipgloss.Place(
			contentWidth, contentHeight,
			lipgloss.Center, lipgloss.Center,
			m.picker.View(),
		)
	}

	statusBar := renderStatusBar(page.ShortHelp(), m.width, m.focus)

	return renderLayout(topBar, sidebar, content, statusBar)
}

// broadcast sends msg through every page synchronously and batches any
// commands they return.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for id, page := range m.pages {
		newPage, cmd := page.Update(msg)
		m.pages[id] = newPage
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) nextPage() {
	for i, id := range PageOrder {
		if id == m.activePage {
			m.activePage = PageOrder[(i+1)%len(PageOrder)]
			return
		}
	}
}

func (m *Model) prevPage() {
	for i, id := range PageOrder {
		if id == m.activePage {
			m.activePage = PageOrder[(i-1+len(PageOrder))%len(PageOrder)]
			return
		}
	}
}
