package pages

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/app"
	"waystyle/internal/config"
	"waystyle/internal/store"
	"waystyle/internal/ui"
	"waystyle/internal/waybar"
)

const historyShown = 5

// OverviewPage shows the detected environment, waybar's liveness, and
// the recent save/action history, with keys to drive the process.
type OverviewPage struct {
	store  *store.Store
	paths  config.Paths
	runner waybar.Runner

	session waybar.SessionInfo
	status  waybar.StatusMsg
	busy    bool

	width, height int
	message       string
}

func NewOverviewPage(st *store.Store, paths config.Paths, runner waybar.Runner) *OverviewPage {
	return &OverviewPage{
		store:   st,
		paths:   paths,
		runner:  runner,
		session: waybar.DetectSession(),
	}
}

func (p *OverviewPage) Init() tea.Cmd {
	return p.runner.Status()
}

func (p *OverviewPage) Update(msg tea.Msg) (app.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case waybar.StatusMsg:
		p.status = msg
		return p, nil

	case waybar.ActionResultMsg:
		p.busy = false
		record := store.ReloadRecord{
			Action:    msg.Action,
			Timestamp: time.Now(),
			Success:   msg.Err == nil,
		}
		if msg.Err != nil {
			record.Error = msg.Err.Error()
			p.message = fmt.Sprintf("%s failed: %v", msg.Action, msg.Err)
		} else {
			p.message = fmt.Sprintf("%s done in %s", msg.Action, msg.Duration.Round(time.Millisecond))
		}
		if err := p.store.AddReload(record); err != nil {
			p.message = fmt.Sprintf("%s (history not recorded: %v)", p.message, err)
		}
		return p, p.runner.Status()

	case app.StyleSavedMsg:
		// Refresh so the save shows up in the history list.
		return p, nil

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "r":
			p.busy = true
			p.message = "Reloading waybar..."
			return p, p.runner.Reload()
		case "s":
			p.busy = true
			p.message = "Starting waybar..."
			return p, p.runner.Start()
		case "x":
			p.busy = true
			p.message = "Stopping waybar..."
			return p, p.runner.Stop()
		case "R":
			p.busy = true
			p.message = "Restarting waybar..."
			return p, p.runner.Restart()
		case "u":
			return p, p.runner.Status()
		}
	}
	return p, nil
}

func (p *OverviewPage) View() string {
	var b strings.Builder
	b.WriteString(ui.Title("Overview"))
	b.WriteString("\n")

	// Session.
	if p.session.Compositor.Known() {
		b.WriteString(fmt.Sprintf("  Compositor: %s", p.session.Compositor))
		if p.session.Version != "" {
			b.WriteString(ui.DimStyle.Render("  " + p.session.Version))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  Compositor: " + ui.DimStyle.Render("not detected") + "\n")
	}
	b.WriteString(fmt.Sprintf("  Session:    %s\n\n", p.session.SessionType))

	// Waybar process.
	if p.status.Err != nil {
		b.WriteString("  Waybar: " + ui.ErrorStyle.Render(p.status.Err.Error()) + "\n")
	} else if p.status.Running {
		pids := make([]string, len(p.status.PIDs))
		for i, pid := range p.status.PIDs {
			pids[i] = strconv.Itoa(pid)
		}
		b.WriteString("  Waybar: " + ui.SuccessBadge("Running") + ui.DimStyle.Render("  pid "+strings.Join(pids, ", ")) + "\n")
	} else {
		b.WriteString("  Waybar: " + ui.ErrorBadge("Stopped") + "\n")
	}
	b.WriteString("\n")

	// Files.
	b.WriteString("  " + p.renderFile("Config", p.paths.ConfigFile) + "\n")
	b.WriteString("  " + p.renderFile("Style ", p.store.Path()) + "\n")
	b.WriteString("\n")

	b.WriteString(p.renderHistory())

	if p.message != "" {
		b.WriteString("\n  " + p.message + "\n")
	}

	return b.String()
}

func (p *OverviewPage) renderFile(label, path string) string {
	if path == "" {
		return fmt.Sprintf("%s: %s", label, ui.DimStyle.Render("(not set)"))
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf("%s: %s %s", label, path, ui.ErrorStyle.Render("missing"))
	}
	return fmt.Sprintf("%s: %s", label, path)
}

func (p *OverviewPage) renderHistory() string {
	var b strings.Builder

	saves, _ := p.store.Saves()
	b.WriteString("  Recent saves:\n")
	if len(saves) == 0 {
		b.WriteString(ui.DimStyle.Render("    none yet") + "\n")
	}
	for i := len(saves) - 1; i >= 0 && i >= len(saves)-historyShown; i-- {
		s := saves[i]
		b.WriteString(fmt.Sprintf("    %s  %d styles, %d bytes\n",
			s.Timestamp.Format("15:04:05"), s.Styles, s.Bytes))
	}

	reloads, _ := p.store.Reloads()
	b.WriteString("\n  Recent actions:\n")
	if len(reloads) == 0 {
		b.WriteString(ui.DimStyle.Render("    none yet") + "\n")
	}
	for i := len(reloads) - 1; i >= 0 && i >= len(reloads)-historyShown; i-- {
		r := reloads[i]
		outcome := "ok"
		if !r.Success {
			outcome = ui.ErrorStyle.Render("failed: " + r.Error)
		}
		b.WriteString(fmt.Sprintf("    %s  %-8s %s\n",
			r.Timestamp.Format("15:04:05"), r.Action, outcome))
	}

	return b.String()
}

func (p *OverviewPage) Name() string { return "Overview" }

func (p *OverviewPage) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restart")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "refresh")),
	}
}

func (p *OverviewPage) SetSize(w, h int) {
	p.width = w
	p.height = h
}
