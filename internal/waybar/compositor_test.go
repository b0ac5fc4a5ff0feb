package waybar

import "testing"

func TestCompositorFromName(t *testing.T) {
	cases := map[string]Compositor{
		"hyprland":  CompositorHyprland,
		"Hyprland":  CompositorHyprland,
		"HYPRLAND":  CompositorHyprland,
		"sway":      CompositorSway,
		"river":     CompositorRiver,
		"dwl":       CompositorDwl,
		"niri":      CompositorNiri,
		"gnome":     CompositorUnknown,
		"":          CompositorUnknown,
		"something": CompositorUnknown,
	}
	for name, want := range cases {
		if got := compositorFromName(name); got != want {
			t.Errorf("compositorFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDetectCompositorOutsideWayland(t *testing.T) {
	env := map[string]string{"XDG_CURRENT_DESKTOP": "sway"}
	got := detectCompositor(
		func(k string) string { return env[k] },
		func() Compositor { t.Fatal("process probe must not run outside wayland"); return CompositorUnknown },
	)
	if got != CompositorUnknown {
		t.Errorf("expected unknown without WAYLAND_DISPLAY, got %v", got)
	}
}

func TestDetectCompositorFromDesktopEnv(t *testing.T) {
	env := map[string]string{
		"WAYLAND_DISPLAY":     "wayland-1",
		"XDG_CURRENT_DESKTOP": "Hyprland",
	}
	got := detectCompositor(
		func(k string) string { return env[k] },
		func() Compositor { t.Fatal("process probe should not be needed"); return CompositorUnknown },
	)
	if got != CompositorHyprland {
		t.Errorf("expected hyprland, got %v", got)
	}
}

func TestDetectCompositorFallsBackToProcesses(t *testing.T) {
	env := map[string]string{
		"WAYLAND_DISPLAY":     "wayland-1",
		"XDG_CURRENT_DESKTOP": "wlroots", // unrecognized
	}
	got := detectCompositor(
		func(k string) string { return env[k] },
		func() Compositor { return CompositorRiver },
	)
	if got != CompositorRiver {
		t.Errorf("expected river from process probe, got %v", got)
	}
}

func TestKnown(t *testing.T) {
	if CompositorUnknown.Known() {
		t.Error("unknown must not be Known")
	}
	if !CompositorSway.Known() {
		t.Error("sway must be Known")
	}
}
