package main

import (
	"wsl-dev-setup/cmd" // The cmd package contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// wsl-dev-setup automates the setup of a WSL-centred Windows development
// workstation:
//   - Installs applications through winget (silently, agreements pre-accepted)
//   - Enables the Windows optional features WSL depends on
//   - Installs the WSL subsystem, a distribution, and sets both as defaults
//   - Installs a Nerd Font for the terminal from a GitHub release
//   - Merges a color scheme into the Windows Terminal settings.json and
//     points every WSL profile at it, backing the file up first
//
// Every step probes the current machine state before acting, so re-running
// the tool is cheap and side-effect free: work that is already done is
// reported as "already satisfied" and skipped.
//
// Error handling strategy:
//   - A step failure is reported and the run continues, applying as much of
//     the plan as possible; completed steps are never rolled back
//   - Only missing prerequisites (administrator rights, a declined run
//     without network) abort the run, with a non-zero exit status
func main() {
	cmd.Execute()
}
