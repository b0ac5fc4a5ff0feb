package config

import (
	"os"
	"path/filepath"
)

// Paths locates the waybar configuration on disk.
type Paths struct {
	// ConfigDir is the directory holding waybar's files.
	ConfigDir string
	// ConfigFile is the bar configuration (config.jsonc or legacy config).
	ConfigFile string
	// StyleFile is the stylesheet waybar loads.
	StyleFile string
}

// DetectPaths returns the standard waybar paths under the user config
// directory (honoring XDG_CONFIG_HOME). The config file is probed:
// config.jsonc wins over the legacy bare config when both exist.
func DetectPaths() (Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, err
	}

	dir := filepath.Join(base, "waybar")
	p := Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.jsonc"),
		StyleFile:  filepath.Join(dir, "style.css"),
	}
	if found := DetectConfigFile(dir); found != "" {
		p.ConfigFile = found
	}
	return p, nil
}

// Exists reports whether the waybar config directory is present.
func (p Paths) Exists() bool {
	info, err := os.Stat(p.ConfigDir)
	return err == nil && info.IsDir()
}

// EnsureConfigDir creates the config directory if needed.
func (p Paths) EnsureConfigDir() error {
	return os.MkdirAll(p.ConfigDir, 0o755)
}

// DetectConfigFile probes dir for the bar configuration file,
// preferring config.jsonc over the legacy bare name. Returns "" when
// neither exists.
func DetectConfigFile(dir string) string {
	candidates := []string{
		filepath.Join(dir, "config.jsonc"),
		filepath.Join(dir, "config"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
