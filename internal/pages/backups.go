package pages

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/app"
	"waystyle/internal/backup"
	"waystyle/internal/store"
	"waystyle/internal/ui"
)

// BackupsPage lists the timestamped backups in the waybar config
// directory and restores the selected one.
type BackupsPage struct {
	store     *store.Store
	configDir string

	backups []string
	cursor  int

	width, height int
	message       string
}

func NewBackupsPage(st *store.Store, configDir string) *BackupsPage {
	return &BackupsPage{
		store:     st,
		configDir: configDir,
	}
}

func (p *BackupsPage) Init() tea.Cmd {
	p.refresh()
	return nil
}

func (p *BackupsPage) Update(msg tea.Msg) (app.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case app.StyleSavedMsg:
		// A save just created a new backup.
		p.refresh()
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down":
			if p.cursor < len(p.backups)-1 {
				p.cursor++
			}
		case "u":
			p.refresh()
			p.message = "Refreshed"
		case "enter":
			return p, p.restore()
		}
	}
	return p, nil
}

// restore copies the selected backup over its original file. When the
// stylesheet itself was restored the store is reloaded and every page
// told to re-render.
func (p *BackupsPage) restore() tea.Cmd {
	if len(p.backups) == 0 || p.cursor >= len(p.backups) {
		return nil
	}
	name := p.backups[p.cursor]

	target := backup.Target(name)
	if target == "" {
		return nil
	}
	backupPath := filepath.Join(p.configDir, name)
	targetPath := filepath.Join(p.configDir, target)

	if err := backup.Restore(backupPath, targetPath); err != nil {
		p.message = fmt.Sprintf("Restore failed: %v", err)
		return nil
	}
	p.message = fmt.Sprintf("Restored %s", target)
	p.refresh()

	if targetPath != p.store.Path() {
		return nil
	}
	if err := p.store.Load(); err != nil {
		p.message = fmt.Sprintf("Restored but reload failed: %v", err)
		return nil
	}
	return func() tea.Msg { return app.StylesReloadedMsg{} }
}

func (p *BackupsPage) refresh() {
	backups, err := backup.List(p.configDir)
	if err != nil {
		p.backups = nil
		p.message = fmt.Sprintf("Cannot list %s: %v", p.configDir, err)
		return
	}
	p.backups = backups
	if p.cursor >= len(p.backups) {
		p.cursor = len(p.backups) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *BackupsPage) View() string {
	var inner strings.Builder

	if len(p.backups) == 0 {
		inner.WriteString(ui.DimStyle.Render("No backups yet."))
		inner.WriteString("\n\n")
		inner.WriteString(ui.DimStyle.Render("Backups are created automatically on every save."))
	}

	for i, name := range p.backups {
		cursor := "  "
		if i == p.cursor {
			cursor = ui.BoldStyle.Render("> ")
		}
		inner.WriteString(fmt.Sprintf("%s%s\n", cursor, name))
	}

	if p.message != "" {
		inner.WriteString("\n  " + p.message)
	}

	return ui.Panel("Backups", inner.String(), p.width, 0, false)
}

func (p *BackupsPage) Name() string { return "Backups" }

func (p *BackupsPage) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restore")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "refresh")),
	}
}

func (p *BackupsPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}
