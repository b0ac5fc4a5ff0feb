// Package watch notices when the stylesheet changes on disk outside the
// editor, so the displayed model can be re-derived from the file.
package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FileChangedMsg is emitted when the watched file is written or
// recreated.
type FileChangedMsg struct {
	Path string
}

// ErrorMsg is emitted when the watcher cannot be established or fails.
type ErrorMsg struct {
	Err error
}

// File returns a tea.Cmd that blocks until path changes on disk, then
// delivers a single FileChangedMsg. Re-issue the command after handling
// the message to keep watching; the one-shot shape keeps the watcher
// lifecycle inside the update loop.
func File(path string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		defer watcher.Close()

		if err := watcher.Add(path); err != nil {
			return ErrorMsg{Err: err}
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return ErrorMsg{Err: nil}
				}
				if event.Op&fsnotify.Write == fsnotify.Write ||
					event.Op&fsnotify.Create == fsnotify.Create {
					// Editors often write in bursts; let them finish.
					time.Sleep(10 * time.Millisecond)
					return FileChangedMsg{Path: path}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return ErrorMsg{Err: nil}
				}
				return ErrorMsg{Err: err}
			}
		}
	}
}
