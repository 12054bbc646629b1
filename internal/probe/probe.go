package probe

import (
	"errors"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"wsl-dev-setup/internal/logger"
)

// State is the answer a probe gives about one subject on this machine.
// Probes are strictly read-only; a probe that cannot tell reports Unknown
// rather than failing, because a missing dependency is expected here,
// not exceptional.
type State int

const (
	// Unknown means the probe could not determine the state (the probe
	// command itself failed, or its output was unrecognizable).
	Unknown State = iota
	// Present means the subject is already installed/enabled.
	Present
	// Absent means the subject is confirmed missing/disabled.
	Absent
)

func (s State) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// ErrNetworkUnavailable is reported when no network connectivity could be
// confirmed and the user declined to continue without it.
var ErrNetworkUnavailable = errors.New("network unavailable")

// execCommand runs an external command and returns its combined output.
// A package variable so tests can substitute fake command output.
var execCommand = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// httpHead issues the HTTP HEAD used by the network probe; replaceable in tests.
var httpHead = func(url string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(url)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// Package reports whether the winget package with the given exact ID is
// installed. winget exits non-zero when the list is empty, which is a
// normal Absent, not an error; only failure to run winget at all is Unknown.
func Package(id string) State {
	out, err := execCommand("winget", "list", "--id", id, "--exact", "--disable-interactivity")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("[DEBUG] winget list reported %s as not installed\n", id)
			return Absent
		}
		logger.Debug("[DEBUG] Failed to run winget for %s: %v\n", id, err)
		return Unknown
	}
	if strings.Contains(decodeConsoleOutput(out), id) {
		return Present
	}
	return Absent
}

// Subsystem reports whether the WSL subsystem itself is installed.
// `wsl --status` succeeds only once the subsystem is present.
func Subsystem() State {
	out, err := execCommand("wsl.exe", "--status")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Absent
		}
		logger.Debug("[DEBUG] Failed to query wsl status: %v\n", err)
		return Unknown
	}
	logger.Debug("[DEBUG] wsl --status:\n%s\n", decodeConsoleOutput(out))
	return Present
}

// Distribution reports whether the named WSL distribution is installed,
// by matching it against `wsl --list --quiet`.
func Distribution(name string) State {
	out, err := execCommand("wsl.exe", "--list", "--quiet")
	if err != nil {
		logger.Debug("[DEBUG] Failed to list distributions: %v\n", err)
		return Unknown
	}
	for _, line := range strings.Split(decodeConsoleOutput(out), "\n") {
		if strings.TrimSpace(line) == name {
			return Present
		}
	}
	return Absent
}

// Feature reports whether the named Windows optional feature is enabled,
// classifying the "State : ..." line of dism's feature info output.
// An unreadable answer is Unknown, never fatal.
func Feature(name string) State {
	out, err := execCommand("dism.exe", "/online", "/Get-FeatureInfo", "/FeatureName:"+name, "/English")
	if err != nil {
		logger.Debug("[DEBUG] Failed to query feature %s: %v\n", name, err)
		return Unknown
	}
	for _, line := range strings.Split(decodeConsoleOutput(out), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "State") {
			continue
		}
		switch {
		case strings.Contains(trimmed, "Enabled"):
			return Present
		case strings.Contains(trimmed, "Disabled"):
			return Absent
		}
	}
	logger.Debug("[DEBUG] No State line in feature info for %s\n", name)
	return Unknown
}

// Network reports whether the given URL is reachable. Used as a soft
// prerequisite check before steps that download anything.
func Network(url string) State {
	if err := httpHead(url); err != nil {
		logger.Debug("[DEBUG] Network probe against %s failed: %v\n", url, err)
		return Absent
	}
	return Present
}
