package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/app"
	"waystyle/internal/config"
	"waystyle/internal/ui"
)

type settingField struct {
	label string
	key   string
}

var settingFields = []settingField{
	{"Style Path", "style_path"},
	{"Config Dir", "config_dir"},
	{"Auto Reload", "auto_reload"},
	{"Backups Kept", "backup_keep"},
	{"Log Level", "log_level"},
}

type SettingsPage struct {
	cfg           *config.Config
	stateDir      string
	cursor        int
	editing       bool
	input         textinput.Model
	width, height int
	message       string
}

func NewSettingsPage(cfg *config.Config, stateDir string) *SettingsPage {
	ti := textinput.New()
	ti.CharLimit = 256
	return &SettingsPage{
		cfg:      cfg,
		stateDir: stateDir,
		input:    ti,
	}
}

func (p *SettingsPage) Init() tea.Cmd { return nil }

func (p *SettingsPage) Update(msg tea.Msg) (app.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.editing {
			switch msg.String() {
			case "enter":
				p.applyValue(p.input.Value())
				p.editing = false
				p.input.Blur()
				return p, nil
			case "esc":
				p.editing = false
				p.input.Blur()
				return p, nil
			}
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}

		switch msg.String() {
		case "down":
			if p.cursor < len(settingFields)-1 {
				p.cursor++
			}
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
		case "enter", "e":
			// Booleans toggle directly, everything else gets an input.
			if settingFields[p.cursor].key == "auto_reload" {
				p.cfg.AutoReload = !p.cfg.AutoReload
				p.message = "Auto Reload toggled"
				return p, nil
			}
			p.editing = true
			p.input.SetValue(p.getValue(p.cursor))
			p.input.Focus()
			return p, p.input.Focus()
		case "s":
			if err := config.Save(*p.cfg, p.stateDir); err != nil {
				p.message = fmt.Sprintf("Error saving: %v", err)
			} else {
				p.message = "Settings saved"
			}
		}
	}
	return p, nil
}

func (p *SettingsPage) View() string {
	var inner strings.Builder

	for i, f := range settingFields {
		cursor := "  "
		if i == p.cursor {
			cursor = ui.BoldStyle.Render("> ")
		}

		val := p.getValue(i)
		if val == "" {
			val = ui.DimStyle.Render("(auto-detect)")
		}

		line := fmt.Sprintf("%s%-16s %s", cursor, f.label, val)
		inner.WriteString(line)
		inner.WriteString("\n")
	}

	if p.editing {
		inner.WriteString("\n")
		inner.WriteString(fmt.Sprintf("  Edit %s:\n", settingFields[p.cursor].label))
		inner.WriteString("  " + p.input.View())
		inner.WriteString("\n")
	}

	if p.message != "" {
		inner.WriteString("\n  " + p.message)
	}

	inner.WriteString("\n\n")
	inner.WriteString(ui.DimStyle.Render("  Path changes take effect on restart."))

	return ui.Panel("Settings", inner.String(), p.width, 0, false)
}

func (p *SettingsPage) Name() string { return "Settings" }

func (p *SettingsPage) ShortHelp() []key.Binding {
	if p.editing {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save to disk")),
	}
}

func (p *SettingsPage) InputCaptured() bool {
	return p.editing
}

func (p *SettingsPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *SettingsPage) getValue(idx int) string {
	switch settingFields[idx].key {
	case "style_path":
		return p.cfg.StylePath
	case "config_dir":
		return p.cfg.ConfigDir
	case "auto_reload":
		if p.cfg.AutoReload {
			return "on"
		}
		return "off"
	case "backup_keep":
		return strconv.Itoa(p.cfg.BackupKeep)
	case "log_level":
		return p.cfg.LogLevel
	}
	return ""
}

func (p *SettingsPage) applyValue(val string) {
	val = strings.TrimSpace(val)
	switch settingFields[p.cursor].key {
	case "style_path":
		p.cfg.StylePath = val
	case "config_dir":
		p.cfg.ConfigDir = val
	case "backup_keep":
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			p.message = fmt.Sprintf("Backups Kept needs a non-negative number, got %q", val)
			return
		}
		p.cfg.BackupKeep = n
	case "log_level":
		p.cfg.LogLevel = val
	}
	p.message = fmt.Sprintf("%s updated", settingFields[p.cursor].label)
}
