package waybar

import (
	"os"
	"os/exec"
	"strings"
)

// Compositor is a Wayland compositor waybar is known to run under.
type Compositor string

const (
	CompositorHyprland Compositor = "hyprland"
	CompositorSway     Compositor = "sway"
	CompositorRiver    Compositor = "river"
	CompositorDwl      Compositor = "dwl"
	CompositorNiri     Compositor = "niri"
	CompositorUnknown  Compositor = "unknown"
)

// Known reports whether the compositor was actually identified.
func (c Compositor) Known() bool { return c != CompositorUnknown }

// SessionInfo describes the detected graphical session.
type SessionInfo struct {
	Compositor Compositor
	// SessionType is "wayland" or "x11".
	SessionType string
	// Version is the compositor's --version first line, when available.
	Version string
}

// compositorFromName maps a desktop or process name to a Compositor.
// Matching is case-insensitive; anything unrecognized is unknown.
func compositorFromName(name string) Compositor {
	switch strings.ToLower(name) {
	case "hyprland":
		return CompositorHyprland
	case "sway":
		return CompositorSway
	case "river":
		return CompositorRiver
	case "dwl":
		return CompositorDwl
	case "niri":
		return CompositorNiri
	default:
		return CompositorUnknown
	}
}

// DetectCompositor identifies the running Wayland compositor. Outside a
// Wayland session it reports unknown without probing further.
func DetectCompositor() Compositor {
	return detectCompositor(os.Getenv, detectFromProcesses)
}

// detectCompositor takes the environment and process probe as inputs so
// detection order can be tested without a live session.
func detectCompositor(getenv func(string) string, fromProcesses func() Compositor) Compositor {
	if getenv("WAYLAND_DISPLAY") == "" {
		return CompositorUnknown
	}

	// XDG_CURRENT_DESKTOP is what compositors actually set.
	if c := compositorFromName(getenv("XDG_CURRENT_DESKTOP")); c.Known() {
		return c
	}
	// Non-standard, but some setups export it.
	if c := compositorFromName(getenv("WAYLAND_COMPOSITOR")); c.Known() {
		return c
	}
	return fromProcesses()
}

// detectFromProcesses falls back to the process list. Hyprland is the
// only one that capitalizes its binary name.
func detectFromProcesses() Compositor {
	candidates := []struct {
		process    string
		compositor Compositor
	}{
		{"Hyprland", CompositorHyprland},
		{"sway", CompositorSway},
		{"river", CompositorRiver},
		{"dwl", CompositorDwl},
		{"niri", CompositorNiri},
	}

	for _, c := range candidates {
		if err := exec.Command("pgrep", "-x", c.process).Run(); err == nil {
			return c.compositor
		}
	}
	return CompositorUnknown
}

// DetectSession gathers compositor, session type and version.
func DetectSession() SessionInfo {
	info := SessionInfo{
		Compositor:  DetectCompositor(),
		SessionType: "x11",
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		info.SessionType = "wayland"
	}
	if info.Compositor.Known() {
		info.Version = compositorVersion(info.Compositor)
	}
	return info
}

func compositorVersion(c Compositor) string {
	binary := string(c)
	if c == CompositorHyprland {
		binary = "Hyprland"
	}

	out, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
