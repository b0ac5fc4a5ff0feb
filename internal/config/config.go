package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	DefaultBackupKeep = 10
	DefaultLogLevel   = "info"
)

// Config holds all waystyle configuration.
type Config struct {
	// StylePath overrides the detected waybar stylesheet path.
	StylePath string `json:"style_path,omitempty"`
	// ConfigDir overrides the detected waybar config directory.
	ConfigDir string `json:"config_dir,omitempty"`
	// AutoReload sends waybar a reload signal after every save.
	AutoReload bool `json:"auto_reload,omitempty"`
	// BackupKeep caps the number of backups kept per file.
	BackupKeep int    `json:"backup_keep,omitempty"`
	LogLevel   string `json:"log_level,omitempty"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		BackupKeep: DefaultBackupKeep,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads the config from dir/config.json, merged over defaults.
// A missing or unreadable file just yields the defaults.
func Load(dir string) Config {
	cfg := Defaults()
	mergeFromFile(&cfg, filepath.Join(dir, "config.json"))
	return cfg
}

// Save writes the config to dir/config.json.
func Save(cfg Config, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644)
}

func mergeFromFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return
	}

	if fileCfg.StylePath != "" {
		cfg.StylePath = fileCfg.StylePath
	}
	if fileCfg.ConfigDir != "" {
		cfg.ConfigDir = fileCfg.ConfigDir
	}
	if fileCfg.AutoReload {
		cfg.AutoReload = true
	}
	if fileCfg.BackupKeep != 0 {
		cfg.BackupKeep = fileCfg.BackupKeep
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
}
