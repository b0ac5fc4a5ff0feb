package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"waystyle/internal/app"
	"waystyle/internal/config"
	"waystyle/internal/logger"
	"waystyle/internal/pages"
	"waystyle/internal/store"
	"waystyle/internal/waybar"
)

func main() {
	userConfig, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(userConfig, "waystyle")

	cfg := config.Load(stateDir)

	log, closeLog, err := logger.New(stateDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	paths, err := config.DetectPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.ConfigDir != "" {
		paths.ConfigDir = cfg.ConfigDir
		if found := config.DetectConfigFile(cfg.ConfigDir); found != "" {
			paths.ConfigFile = found
		}
		paths.StyleFile = filepath.Join(cfg.ConfigDir, "style.css")
		// An explicit override is authoritative; create it if needed.
		if err := paths.EnsureConfigDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.StylePath != "" {
		paths.StyleFile = cfg.StylePath
	}

	if !paths.Exists() {
		fmt.Fprintf(os.Stderr, "Waybar config directory not found at %s\n", paths.ConfigDir)
		fmt.Fprintln(os.Stderr, "Set config_dir in waystyle's config.json or create the directory.")
		os.Exit(1)
	}

	st := store.New(stateDir, paths.StyleFile, cfg.BackupKeep, log)
	if err := st.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", paths.StyleFile, err)
		os.Exit(1)
	}

	runner := waybar.NewRunner(log)

	pageMap := map[app.PageID]app.Page{
		app.OverviewPage: pages.NewOverviewPage(st, paths, runner),
		app.StylePage:    pages.NewStylePage(st, &cfg, runner),
		app.BackupsPage:  pages.NewBackupsPage(st, paths.ConfigDir),
		app.SettingsPage: pages.NewSettingsPage(&cfg, stateDir),
	}

	model := app.New(pageMap, st)

	log.Info("starting", "style", paths.StyleFile, "config", paths.ConfigFile)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
