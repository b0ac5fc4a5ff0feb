package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"waystyle/internal/app"
	"waystyle/internal/config"
	"waystyle/internal/css"
	"waystyle/internal/store"
	"waystyle/internal/ui"
	"waystyle/internal/waybar"
)

type gridField struct {
	label    string
	property string
}

// gridFields are the common waybar styling knobs shown as fixed rows.
// Anything else goes through the custom row or the text editor.
var gridFields = []gridField{
	{"Background", "background-color"},
	{"Text color", "color"},
	{"Font family", "font-family"},
	{"Font size", "font-size"},
	{"Padding", "padding"},
	{"Margin", "margin"},
	{"Border", "border"},
	{"Border radius", "border-radius"},
	{"Opacity", "opacity"},
	{"Min width", "min-width"},
}

type stylePane int

const (
	paneGrid stylePane = iota
	paneText
)

// StylePage is the main editing page: a property grid on the left and a
// raw CSS editor on the right, both views over the same store style.
type StylePage struct {
	store  *store.Store
	cfg    *config.Config
	runner waybar.Runner

	selector string
	pane     stylePane
	cursor   int
	editing  bool
	adding   bool
	input    textinput.Model
	text     textarea.Model

	width, height int
	message       string
}

func NewStylePage(st *store.Store, cfg *config.Config, runner waybar.Runner) *StylePage {
	ti := textinput.New()
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "select a rule to edit"
	ta.ShowLineNumbers = false

	return &StylePage{
		store:  st,
		cfg:    cfg,
		runner: runner,
		input:  ti,
		text:   ta,
	}
}

func (p *StylePage) Init() tea.Cmd { return nil }

func (p *StylePage) Update(msg tea.Msg) (app.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case app.SelectorChosenMsg:
		p.selector = msg.Selector
		p.pane = paneGrid
		p.cursor = 0
		p.message = ""
		p.refreshText()
		return p, nil

	case app.StylesReloadedMsg:
		// The document changed under us (external edit or restore);
		// re-render whatever survives under the current selector.
		p.refreshText()
		return p, nil

	case waybar.ActionResultMsg:
		if msg.Action == "reload" {
			if msg.Err != nil {
				p.message = fmt.Sprintf("Reload failed: %v", msg.Err)
			}
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *StylePage) handleKey(msg tea.KeyMsg) (app.Page, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		return p, p.save()
	}

	if p.adding {
		switch msg.String() {
		case "enter":
			sel := strings.TrimSpace(p.input.Value())
			p.adding = false
			p.input.Blur()
			if sel == "" {
				return p, nil
			}
			if !p.store.AddStyle(sel) {
				p.message = fmt.Sprintf("Rule %s already exists", sel)
				return p, nil
			}
			p.message = fmt.Sprintf("Added %s", sel)
			return p, func() tea.Msg { return app.SelectorChosenMsg{Selector: sel} }
		case "esc":
			p.adding = false
			p.input.Blur()
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	if p.editing {
		switch msg.String() {
		case "enter":
			p.commitEdit(p.input.Value())
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

	if p.pane == paneText {
		switch msg.String() {
		case "esc":
			p.pane = paneGrid
			p.text.Blur()
			// Re-render so manual edits come back normalized.
			p.refreshText()
			return p, nil
		}
		var cmd tea.Cmd
		p.text, cmd = p.text.Update(msg)
		p.applyText(p.text.Value())
		return p, cmd
	}

	// Grid pane.
	switch msg.String() {
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down":
		if p.cursor < len(gridFields) { // last row is the custom entry
			p.cursor++
		}
	case "enter", "e":
		if p.selector == "" {
			return p, nil
		}
		p.editing = true
		if p.cursor < len(gridFields) {
			style, _ := p.store.Style(p.selector)
			p.input.SetValue(style.Get(gridFields[p.cursor].property))
			p.input.Placeholder = "value (empty removes)"
		} else {
			p.input.SetValue("")
			p.input.Placeholder = "property: value"
		}
		p.input.Focus()
		return p, p.input.Focus()
	case "d":
		if p.selector == "" || p.cursor >= len(gridFields) {
			return p, nil
		}
		p.commitProperty(gridFields[p.cursor].property, "", false)
	case "!":
		p.toggleImportant()
	case "t":
		if p.selector == "" {
			return p, nil
		}
		p.pane = paneText
		return p, p.text.Focus()
	case "a":
		p.adding = true
		p.input.SetValue("")
		p.input.Placeholder = "#clock, window#waybar, .modules-left ..."
		p.input.Focus()
		return p, p.input.Focus()
	case "x":
		if p.selector == "" {
			return p, nil
		}
		if p.store.RemoveStyle(p.selector) {
			p.message = fmt.Sprintf("Removed %s", p.selector)
			p.selector = ""
			p.text.SetValue("")
		}
	}
	return p, nil
}

// commitEdit routes a finished grid edit to the right property. The
// custom row takes "property: value" text split at the first colon, the
// same split the text parser uses.
func (p *StylePage) commitEdit(raw string) {
	if p.cursor < len(gridFields) {
		f := gridFields[p.cursor]
		style, _ := p.store.Style(p.selector)
		important := false
		if d, ok := style.Lookup(f.property); ok {
			important = d.Important
		}
		p.commitProperty(f.property, strings.TrimSpace(raw), important)
		return
	}

	idx := strings.Index(raw, ":")
	if idx == -1 {
		p.message = "Expected property: value"
		return
	}
	prop := strings.TrimSpace(raw[:idx])
	val := strings.TrimSpace(raw[idx+1:])
	if prop == "" {
		return
	}
	important := false
	if strings.Contains(val, "!important") {
		important = true
		val = strings.TrimSpace(strings.TrimSuffix(val, "!important"))
	}
	p.commitProperty(prop, val, important)
}

func (p *StylePage) commitProperty(property, value string, important bool) {
	style, ok := p.store.Style(p.selector)
	if !ok {
		return
	}
	p.store.UpdateStyle(style.Set(property, value, important))
	p.refreshText()
}

func (p *StylePage) toggleImportant() {
	if p.selector == "" || p.cursor >= len(gridFields) {
		return
	}
	style, ok := p.store.Style(p.selector)
	if !ok {
		return
	}
	d, ok := style.Lookup(gridFields[p.cursor].property)
	if !ok {
		return
	}
	p.store.UpdateStyle(style.Set(d.Property, d.Value, !d.Important))
	p.refreshText()
}

// applyText pushes the raw editor buffer into the store. The buffer is
// parsed tolerantly on every keystroke; a blank buffer is left alone so
// clearing the pane mid-edit does not wipe the rule.
func (p *StylePage) applyText(text string) {
	if p.selector == "" || strings.TrimSpace(text) == "" {
		return
	}
	p.store.UpdateStyle(css.Style{
		Selector:     p.selector,
		Declarations: css.ParseDeclarations(text),
	})
}

// refreshText re-renders the text pane from the store. Never called
// while the text pane is focused mid-keystroke, so typing is not fought
// by the serializer.
func (p *StylePage) refreshText() {
	if p.selector == "" {
		p.text.SetValue("")
		return
	}
	style, ok := p.store.Style(p.selector)
	if !ok {
		p.text.SetValue("")
		return
	}
	p.text.SetValue(css.Serialize(style.Selector, style.Declarations))
}

func (p *StylePage) save() tea.Cmd {
	if err := p.store.Save(); err != nil {
		p.message = fmt.Sprintf("Save failed: %v", err)
		return nil
	}
	p.message = fmt.Sprintf("Saved %s", p.store.Path())

	saved := func() tea.Msg { return app.StyleSavedMsg{Path: p.store.Path()} }
	if p.cfg.AutoReload {
		return tea.Batch(saved, p.runner.Reload())
	}
	return saved
}

func (p *StylePage) View() string {
	gridWidth := p.width / 2
	textWidth := p.width - gridWidth

	grid := ui.Panel("Properties", p.renderGrid(), gridWidth, p.height, p.pane == paneGrid && !p.adding)

	p.text.SetWidth(textWidth - 6)
	p.text.SetHeight(p.height - 4)
	text := ui.Panel("CSS", p.text.View(), textWidth, p.height, p.pane == paneText)

	return lipgloss.JoinHorizontal(lipgloss.Top, grid, text)
}

func (p *StylePage) renderGrid() string {
	var b strings.Builder

	if p.selector == "" {
		b.WriteString(ui.DimStyle.Render("No rule selected."))
		b.WriteString("\n\n")
		b.WriteString(ui.DimStyle.Render("Press s in the sidebar to pick one,"))
		b.WriteString("\n")
		b.WriteString(ui.DimStyle.Render("or a to add a new rule."))
		if p.adding {
			b.WriteString("\n\n  New rule selector:\n  " + p.input.View())
		}
		return b.String()
	}

	style, ok := p.store.Style(p.selector)
	if !ok {
		b.WriteString(ui.DimStyle.Render(fmt.Sprintf("Rule %s is gone from the document.", p.selector)))
		return b.String()
	}

	b.WriteString(ui.AccentStyle.Render(p.selector))
	b.WriteString("\n\n")

	for i, f := range gridFields {
		cursor := "  "
		if p.pane == paneGrid && i == p.cursor {
			cursor = ui.BoldStyle.Render("> ")
		}

		val := ""
		mark := ""
		if d, ok := style.Lookup(f.property); ok {
			val = d.Value
			if d.Important {
				mark = ui.WarningStyle.Render(" !")
			}
			if sw := ui.Swatch(d.Value); sw != "" {
				val += " " + sw
			}
		} else {
			val = ui.DimStyle.Render("(unset)")
		}

		b.WriteString(fmt.Sprintf("%s%-14s %s%s", cursor, f.label, val, mark))
		b.WriteString("\n")
	}

	// Custom property row.
	cursor := "  "
	if p.pane == paneGrid && p.cursor == len(gridFields) {
		cursor = ui.BoldStyle.Render("> ")
	}
	b.WriteString(fmt.Sprintf("%s%-14s %s", cursor, "Custom", ui.DimStyle.Render("(enter to add)")))
	b.WriteString("\n")

	if extras := p.extraProperties(style); len(extras) > 0 {
		b.WriteString("\n")
		b.WriteString(ui.DimStyle.Render("Other properties: " + strings.Join(extras, ", ")))
		b.WriteString("\n")
	}

	if p.editing {
		b.WriteString("\n")
		if p.cursor < len(gridFields) {
			b.WriteString(fmt.Sprintf("  Edit %s:\n", gridFields[p.cursor].label))
		} else {
			b.WriteString("  Custom property:\n")
		}
		b.WriteString("  " + p.input.View())
		b.WriteString("\n")
	}
	if p.adding {
		b.WriteString("\n  New rule selector:\n  " + p.input.View())
		b.WriteString("\n")
	}

	if p.message != "" {
		b.WriteString("\n  " + p.message)
	}

	return b.String()
}

// extraProperties lists properties present on the style but not covered
// by a grid row, so nothing set through the text pane is invisible.
func (p *StylePage) extraProperties(style css.Style) []string {
	known := make(map[string]bool, len(gridFields))
	for _, f := range gridFields {
		known[f.property] = true
	}
	var extras []string
	seen := make(map[string]bool)
	for _, d := range style.Declarations {
		if !known[d.Property] && !seen[d.Property] {
			extras = append(extras, d.Property)
			seen[d.Property] = true
		}
	}
	return extras
}

func (p *StylePage) Name() string { return "Style" }

func (p *StylePage) ShortHelp() []key.Binding {
	if p.editing || p.adding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	if p.pane == paneText {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "grid")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "clear")),
		key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "important")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text editor")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add rule")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove rule")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

func (p *StylePage) InputCaptured() bool {
	return p.editing || p.adding || p.pane == paneText
}

func (p *StylePage) SetSize(w, h int) {
	p.width = w
	p.height = h
}
