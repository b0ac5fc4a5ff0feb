package pages

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/config"
	"waystyle/internal/store"
	"waystyle/internal/waybar"
)

func newTestOverviewPage(t *testing.T) (*OverviewPage, *store.Store, *fakeRunner) {
	t.Helper()

	dir := t.TempDir()
	st := store.New(dir, filepath.Join(dir, "style.css"), 0, nil)
	runner := &fakeRunner{}
	paths := config.Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.jsonc"),
		StyleFile:  st.Path(),
	}
	p := NewOverviewPage(st, paths, runner)
	p.SetSize(80, 24)
	return p, st, runner
}

func TestOverviewKeysDriveRunner(t *testing.T) {
	p, _, runner := newTestOverviewPage(t)

	cases := []struct {
		key    string
		action string
	}{
		{"r", "reload"},
		{"s", "start"},
		{"x", "stop"},
		{"R", "restart"},
	}
	for _, tc := range cases {
		p.busy = false
		_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)})
		if cmd == nil {
			t.Fatalf("%s: expected a command", tc.key)
		}
		if runner.calls[len(runner.calls)-1] != tc.action {
			t.Fatalf("%s: expected %s call, got %v", tc.key, tc.action, runner.calls)
		}
		if !p.busy {
			t.Fatalf("%s: expected busy while action runs", tc.key)
		}
	}
}

func TestOverviewBusyIgnoresKeys(t *testing.T) {
	p, _, runner := newTestOverviewPage(t)

	p.busy = true
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Fatal("expected no command while busy")
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no runner calls, got %v", runner.calls)
	}
}

func TestOverviewActionResultRecordsHistory(t *testing.T) {
	p, st, _ := newTestOverviewPage(t)

	p.busy = true
	_, cmd := p.Update(waybar.ActionResultMsg{Action: "reload"})
	if p.busy {
		t.Fatal("expected busy cleared after result")
	}
	if cmd == nil {
		t.Fatal("expected a status refresh command")
	}

	reloads, err := st.Reloads()
	if err != nil {
		t.Fatal(err)
	}
	if len(reloads) != 1 {
		t.Fatalf("expected 1 reload record, got %d", len(reloads))
	}
	if reloads[0].Action != "reload" || !reloads[0].Success {
		t.Fatalf("unexpected record: %+v", reloads[0])
	}
}

func TestOverviewHistoryWriteFailureShown(t *testing.T) {
	dir := t.TempDir()
	// Occupy the history location with a file so record writes fail.
	stateDir := filepath.Join(dir, "state")
	if err := os.WriteFile(stateDir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := store.New(stateDir, filepath.Join(dir, "style.css"), 0, nil)
	p := NewOverviewPage(st, config.Paths{ConfigDir: dir}, &fakeRunner{})

	p.Update(waybar.ActionResultMsg{Action: "reload"})

	if !strings.Contains(p.message, "history not recorded") {
		t.Fatalf("expected history failure surfaced, got %q", p.message)
	}
}

func TestOverviewStatusShownInView(t *testing.T) {
	p, _, _ := newTestOverviewPage(t)

	p.Update(waybar.StatusMsg{Running: true, PIDs: []int{1234}})
	view := p.View()
	if !strings.Contains(view, "Running") || !strings.Contains(view, "1234") {
		t.Fatalf("expected running status with pid in view:\n%s", view)
	}

	p.Update(waybar.StatusMsg{Running: false})
	if !strings.Contains(p.View(), "Stopped") {
		t.Fatal("expected stopped status in view")
	}
}
