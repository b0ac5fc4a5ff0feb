// Package waybar drives the waybar process itself: liveness checks,
// config reloads over SIGUSR2, and start/stop. Everything shells out to
// pgrep/pkill, the mechanism waybar's own documentation recommends.
package waybar

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	processName  = "waybar"
	reloadSignal = "SIGUSR2"

	// How long to wait between stop and start on a restart; waybar
	// needs a moment to release the layer-shell surface.
	restartGrace = 500 * time.Millisecond
)

// ActionResultMsg reports the outcome of a process action.
type ActionResultMsg struct {
	Action   string
	Err      error
	Duration time.Duration
}

// StatusMsg reports whether waybar is running and under which PIDs.
type StatusMsg struct {
	Running bool
	PIDs    []int
	Err     error
}

// IsRunning reports whether a waybar process exists.
func IsRunning() (bool, error) {
	out, err := exec.Command("pgrep", "-x", processName).Output()
	if err != nil {
		// pgrep exits 1 when nothing matched.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("pgrep: %w", err)
	}
	return len(strings.TrimSpace(string(out))) > 0, nil
}

// PIDs returns the PIDs of running waybar processes, empty when none.
func PIDs() ([]int, error) {
	out, err := exec.Command("pgrep", "-x", processName).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("pgrep: %w", err)
	}

	var pids []int
	for _, line := range strings.Split(string(out), "\n") {
		if pid, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// Reload sends SIGUSR2 so waybar re-reads its config and stylesheet
// without restarting. Waybar not running is not an error.
func Reload() error {
	running, err := IsRunning()
	if err != nil {
		return err
	}
	if !running {
		return nil
	}
	return signal(reloadSignal)
}

// Start launches waybar detached. Already running is not an error.
func Start() error {
	running, err := IsRunning()
	if err != nil {
		return err
	}
	if running {
		return nil
	}
	if err := exec.Command(processName).Start(); err != nil {
		return fmt.Errorf("start waybar: %w", err)
	}
	return nil
}

// Stop terminates waybar with SIGTERM. Not running is not an error.
func Stop() error {
	running, err := IsRunning()
	if err != nil {
		return err
	}
	if !running {
		return nil
	}
	return signal("SIGTERM")
}

// Restart stops waybar, waits for it to release its surface, and
// starts it again. Needed when a change cannot be applied by reload.
func Restart() error {
	if err := Stop(); err != nil {
		return err
	}
	time.Sleep(restartGrace)
	return Start()
}

func signal(sig string) error {
	out, err := exec.Command("pkill", "-"+sig, processName).CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			// Raced with the process exiting; nothing left to signal.
			return nil
		}
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("pkill -%s %s: %s", sig, processName, msg)
		}
		return fmt.Errorf("pkill -%s %s: %w", sig, processName, err)
	}
	return nil
}

// Runner abstracts process control behind tea commands so pages can be
// tested without a live waybar.
type Runner interface {
	Status() tea.Cmd
	Reload() tea.Cmd
	Start() tea.Cmd
	Stop() tea.Cmd
	Restart() tea.Cmd
}

type execRunner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner backed by the real waybar process.
func NewRunner(logger *slog.Logger) Runner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Status() tea.Cmd {
	return func() tea.Msg {
		running, err := IsRunning()
		if err != nil {
			return StatusMsg{Err: err}
		}
		pids, err := PIDs()
		return StatusMsg{Running: running, PIDs: pids, Err: err}
	}
}

func (r *execRunner) Reload() tea.Cmd  { return r.action("reload", Reload) }
func (r *execRunner) Start() tea.Cmd   { return r.action("start", Start) }
func (r *execRunner) Stop() tea.Cmd    { return r.action("stop", Stop) }
func (r *execRunner) Restart() tea.Cmd { return r.action("restart", Restart) }

func (r *execRunner) action(name string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := fn()
		if r.logger != nil {
			if err != nil {
				r.logger.Error("waybar action failed", "action", name, "err", err)
			} else {
				r.logger.Info("waybar action", "action", name)
			}
		}
		return ActionResultMsg{Action: name, Err: err, Duration: time.Since(start)}
	}
}
