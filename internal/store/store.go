// Package store owns the in-memory stylesheet document being edited.
// It is the single source of truth: both edit surfaces (the property
// grid and the raw-text editor) read from it and write whole styles
// back, and the file on disk is only touched through Load and Save.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"waystyle/internal/backup"
	"waystyle/internal/css"
)

// Store manages the style document and a small history of saves and
// process actions under the app state directory.
type Store struct {
	mu         sync.Mutex
	stateDir   string
	path       string
	backupKeep int
	logger     *slog.Logger

	doc      css.Document
	dirty    bool
	lastSave time.Time
}

// New creates a Store editing the stylesheet at stylePath, with history
// kept under stateDir (typically ~/.config/waystyle).
func New(stateDir, stylePath string, backupKeep int, logger *slog.Logger) *Store {
	return &Store{
		stateDir:   stateDir,
		path:       stylePath,
		backupKeep: backupKeep,
		logger:     logger,
	}
}

// Path returns the stylesheet path being edited.
func (s *Store) Path() string { return s.path }

// Load reads and parses the stylesheet from disk, replacing the
// in-memory document. A missing file yields an empty document: nothing
// to edit yet is a normal first-run state.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			s.doc = css.Document{}
			s.dirty = false
			s.mu.Unlock()
			return nil
		}
		return err
	}

	doc := css.ParseDocument(string(data))
	s.mu.Lock()
	s.doc = doc
	s.dirty = false
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("stylesheet loaded", "path", s.path, "styles", len(doc.Styles))
	}
	return nil
}

// Document returns a snapshot of the current document. The declaration
// slices are shared; callers mutate styles only through css.Style.Set,
// which copies.
func (s *Store) Document() css.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return css.Document{
		Directives: append([]string(nil), s.doc.Directives...),
		Styles:     append([]css.Style(nil), s.doc.Styles...),
	}
}

// Style returns the style for selector.
func (s *Store) Style(selector string) (css.Style, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.doc.Index(selector); i != -1 {
		return s.doc.Styles[i], true
	}
	return css.Style{}, false
}

// Selectors lists the document's selectors in order.
func (s *Store) Selectors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Selectors()
}

// UpdateStyle replaces the declarations of one selector wholesale; this
// is the only mutation channel the edit surfaces use. A selector not in
// the document is appended.
func (s *Store) UpdateStyle(style css.Style) {
	s.mu.Lock()
	s.doc.SetStyle(style)
	s.dirty = true
	s.mu.Unlock()
}

// AddStyle appends an empty style for selector. Reports false when the
// selector already exists.
func (s *Store) AddStyle(selector string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Index(selector) != -1 {
		return false
	}
	s.doc.SetStyle(css.Style{Selector: selector})
	s.dirty = true
	return true
}

// RemoveStyle deletes the style for selector.
func (s *Store) RemoveStyle(selector string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.RemoveStyle(selector) {
		return false
	}
	s.dirty = true
	return true
}

// Dirty reports whether the document has unsaved changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save serializes the document to the stylesheet path, backing up the
// previous file first, and appends a save record to the history.
func (s *Store) Save() error {
	s.mu.Lock()
	data := []byte(s.doc.Serialize())
	styles := len(s.doc.Styles)
	s.mu.Unlock()

	backupPath, err := backup.WriteFile(s.path, data, s.backupKeep)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.dirty = false
	s.lastSave = time.Now()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("stylesheet saved", "path", s.path, "bytes", len(data), "backup", backupPath)
	}

	return s.appendRecord("saves.json", SaveRecord{
		Path:      s.path,
		Timestamp: time.Now(),
		Bytes:     len(data),
		Styles:    styles,
		Backup:    filepath.Base(backupPath),
	})
}

// SavedWithin reports whether Save ran inside the given window. The
// file watcher uses it to tell the editor's own writes apart from
// external ones.
func (s *Store) SavedWithin(window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.lastSave.IsZero() && time.Since(s.lastSave) < window
}

// AddReload appends a waybar action record.
func (s *Store) AddReload(r ReloadRecord) error {
	return s.appendRecord("reloads.json", r)
}

// Saves returns all save records, oldest first.
func (s *Store) Saves() ([]SaveRecord, error) {
	var records []SaveRecord
	err := s.loadRecords("saves.json", &records)
	return records, err
}

// Reloads returns all waybar action records, oldest first.
func (s *Store) Reloads() ([]ReloadRecord, error) {
	var records []ReloadRecord
	err := s.loadRecords("reloads.json", &records)
	return records, err
}

func (s *Store) historyDir() string {
	return filepath.Join(s.stateDir, "history")
}

func (s *Store) appendRecord(filename string, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.historyDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, filename)

	var records []json.RawMessage
	if data, err := os.ReadFile(path); err == nil {
		json.Unmarshal(data, &records)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	records = append(records, raw)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) loadRecords(filename string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.historyDir(), filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dest)
}
