package pages

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/app"
	"waystyle/internal/store"
)

func newTestBackupsPage(t *testing.T) (*BackupsPage, *store.Store, string) {
	t.Helper()

	dir := t.TempDir()
	stylePath := filepath.Join(dir, "style.css")

	files := map[string]string{
		"style.css":                         "#clock {\n  color: red;\n}\n",
		"style.css.backup.20260101-000000":  "#clock {\n  color: blue;\n}\n",
		"style.css.backup.20260201-000000":  "#clock {\n  color: green;\n}\n",
		"config.jsonc.backup.20260101-0000": "{}",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	st := store.New(t.TempDir(), stylePath, 0, nil)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}

	p := NewBackupsPage(st, dir)
	p.Init()
	return p, st, dir
}

func TestBackupsListNewestFirst(t *testing.T) {
	p, _, _ := newTestBackupsPage(t)

	if len(p.backups) != 3 {
		t.Fatalf("expected 3 backups, got %d: %v", len(p.backups), p.backups)
	}
	if p.backups[0] != "style.css.backup.20260201-000000" {
		t.Fatalf("expected newest first, got %v", p.backups)
	}
}

func TestBackupsCursorClamps(t *testing.T) {
	p, _, _ := newTestBackupsPage(t)

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 0 {
		t.Fatalf("expected cursor to clamp at 0, got %d", p.cursor)
	}
	for i := 0; i < 5; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.cursor != len(p.backups)-1 {
		t.Fatalf("expected cursor to clamp at %d, got %d", len(p.backups)-1, p.cursor)
	}
}

func TestBackupsRestoreReloadsStore(t *testing.T) {
	p, st, dir := newTestBackupsPage(t)

	// Newest backup is the green one.
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	data, err := os.ReadFile(filepath.Join(dir, "style.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#clock {\n  color: green;\n}\n" {
		t.Fatalf("unexpected restored content: %q", data)
	}

	style, ok := st.Style("#clock")
	if !ok {
		t.Fatal("store not reloaded after restore")
	}
	if got := style.Get("color"); got != "green" {
		t.Fatalf("expected color=green in store, got %q", got)
	}

	if cmd == nil {
		t.Fatal("expected a reload broadcast command")
	}
	if _, ok := cmd().(app.StylesReloadedMsg); !ok {
		t.Fatal("expected StylesReloadedMsg")
	}

	// The restore itself backed up the previous stylesheet.
	if len(p.backups) != 4 {
		t.Fatalf("expected 4 backups after restore, got %d: %v", len(p.backups), p.backups)
	}
}

func TestBackupsRestoreOtherFileNoReload(t *testing.T) {
	p, _, dir := newTestBackupsPage(t)

	// Move the cursor to the config backup.
	for p.backups[p.cursor] != "config.jsonc.backup.20260101-0000" {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Fatal("expected no broadcast for a non-stylesheet restore")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.jsonc")); err != nil {
		t.Fatalf("expected config.jsonc restored: %v", err)
	}
}

func TestBackupsSavedRefreshesList(t *testing.T) {
	p, st, _ := newTestBackupsPage(t)

	style, _ := st.Style("#clock")
	st.UpdateStyle(style.Set("color", "yellow", false))
	if err := st.Save(); err != nil {
		t.Fatal(err)
	}

	p.Update(app.StyleSavedMsg{Path: st.Path()})
	if len(p.backups) != 4 {
		t.Fatalf("expected 4 backups after save, got %d", len(p.backups))
	}
}
