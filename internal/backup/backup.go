// Package backup writes config files with timestamped backups kept
// next to the original, the convention waybar users already know:
// style.css.backup.20260823-153000.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	marker     = ".backup."
	timeLayout = "20060102-150405"
)

// WriteFile writes data to path, first copying any existing file to a
// timestamped backup. keep limits how many backups are retained for
// this file; 0 disables pruning. Returns the backup path, or "" when
// there was nothing to back up.
func WriteFile(path string, data []byte, keep int) (string, error) {
	backupPath := ""
	if _, err := os.Stat(path); err == nil {
		bp, err := Create(path)
		if err != nil {
			return "", err
		}
		backupPath = bp
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return backupPath, err
	}

	if keep > 0 {
		if err := prune(path, keep); err != nil {
			return backupPath, err
		}
	}
	return backupPath, nil
}

// Create copies path to a timestamped backup in the same directory.
func Create(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	stamped := path + marker + time.Now().Format(timeLayout)
	backupPath := stamped
	// Several saves within one second would collide on the timestamp.
	for i := 2; ; i++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = fmt.Sprintf("%s-%d", stamped, i)
	}

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}

// List returns the backup file names in dir, newest first. The sort is
// lexicographic on the timestamped names, which orders by time.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), marker) {
			backups = append(backups, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// Restore copies backupPath over targetPath, backing up the current
// target first so a restore is itself undoable.
func Restore(backupPath, targetPath string) error {
	if _, err := os.Stat(targetPath); err == nil {
		if _, err := Create(targetPath); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	return os.WriteFile(targetPath, data, 0o644)
}

// Target derives the original file name from a backup name, e.g.
// "style.css.backup.20260823-153000" -> "style.css". Returns "" when
// name is not a backup.
func Target(name string) string {
	i := strings.Index(name, marker)
	if i == -1 {
		return ""
	}
	return name[:i]
}

func prune(path string, keep int) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	all, err := List(dir)
	if err != nil {
		return err
	}

	var mine []string
	for _, name := range all {
		if Target(name) == base {
			mine = append(mine, name)
		}
	}
	for _, name := range mine[min(keep, len(mine)):] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
