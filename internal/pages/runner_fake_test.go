package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/waybar"
)

// fakeRunner records which actions were requested and returns canned
// result messages, so pages can be tested without a live waybar.
type fakeRunner struct {
	calls   []string
	running bool
	err     error
}

func (f *fakeRunner) Status() tea.Cmd {
	f.calls = append(f.calls, "status")
	running := f.running
	return func() tea.Msg { return waybar.StatusMsg{Running: running} }
}

func (f *fakeRunner) Reload() tea.Cmd  { return f.action("reload") }
func (f *fakeRunner) Start() tea.Cmd   { return f.action("start") }
func (f *fakeRunner) Stop() tea.Cmd    { return f.action("stop") }
func (f *fakeRunner) Restart() tea.Cmd { return f.action("restart") }

func (f *fakeRunner) action(name string) tea.Cmd {
	f.calls = append(f.calls, name)
	err := f.err
	return func() tea.Msg {
		return waybar.ActionResultMsg{Action: name, Err: err}
	}
}
