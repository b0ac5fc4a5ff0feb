package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PageID identifies each page in the application.
type PageID int

const (
	OverviewPage PageID = iota
	StylePage
	BackupsPage
	SettingsPage
)

var PageOrder = []PageID{
	OverviewPage,
	StylePage,
	BackupsPage,
	SettingsPage,
}

// Page is the interface every page in the application implements.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	Name() string
	ShortHelp() []key.Binding
	SetSize(width, height int)
}

// InputCapturer is an optional interface for pages with text inputs.
// When InputCaptured returns true, the app forwards all keys directly
// to the page instead of processing shortcuts like q, ?, left, etc.
type InputCapturer interface {
	InputCaptured() bool
}

// SelectorChosenMsg is broadcast to all pages when a rule selector is
// picked as the current editing target.
type SelectorChosenMsg struct {
	Selector string
}

// StyleSavedMsg is broadcast after the stylesheet was written to disk.
type StyleSavedMsg struct {
	Path string
}

// StylesReloadedMsg is broadcast after the store re-read the stylesheet
// from disk (external change or backup restore).
type StylesReloadedMsg struct{}
