package installer

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"wsl-dev-setup/internal/logger"
)

// ErrNotElevated is returned when the process lacks administrator rights.
// Enabling optional features and installing the WSL subsystem both require
// elevation, so this is the one prerequisite treated as fatal.
var ErrNotElevated = errors.New("administrator privileges required, re-run from an elevated shell")

// execCommand runs an external command and returns its combined output.
// A package variable so tests can substitute fake command behavior.
var execCommand = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// run invokes one external command, logging it at debug level and mapping
// a non-zero exit into an error carrying the command's output. Commands
// run to completion with no timeout; see the orchestrator notes.
func run(name string, args ...string) error {
	logger.Debug("[DEBUG] Running command: %s %s\n", name, strings.Join(args, " "))
	output, err := execCommand(name, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// InstallPackage installs a winget package by exact ID, silently and with
// agreements pre-accepted so the run needs no interaction.
func InstallPackage(id string) error {
	logger.Info("[INFO] Installing %s via winget...\n", id)
	return run("winget", "install", "--id", id, "--exact", "--silent",
		"--accept-package-agreements", "--accept-source-agreements")
}

// InstallSubsystem installs the WSL subsystem itself, without any
// distribution; the distribution is a separate step. A reboot may be
// required before distributions can start.
func InstallSubsystem() error {
	logger.Info("[INFO] Installing the WSL subsystem...\n")
	return run("wsl.exe", "--install", "--no-distribution")
}

// SetDefaultVersion sets the WSL version new distributions will use.
func SetDefaultVersion(version int) error {
	logger.Info("[INFO] Setting WSL default version to %d...\n", version)
	return run("wsl.exe", "--set-default-version", strconv.Itoa(version))
}

// InstallDistribution installs the named distribution.
func InstallDistribution(name string) error {
	logger.Info("[INFO] Installing %s distribution...\n", name)
	return run("wsl.exe", "--install", "--distribution", name)
}

// SetDefaultDistribution makes the named distribution the default target
// of bare `wsl` invocations.
func SetDefaultDistribution(name string) error {
	logger.Info("[INFO] Setting %s as the default distribution...\n", name)
	return run("wsl.exe", "--set-default", name)
}

// EnableFeature enables a Windows optional feature via dism. /NoRestart
// defers any required reboot to the end of the whole run.
func EnableFeature(name string) error {
	logger.Info("[INFO] Enabling Windows feature %s...\n", name)
	return run("dism.exe", "/online", "/Enable-Feature", "/FeatureName:"+name, "/All", "/NoRestart")
}
