package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"wsl-dev-setup/internal/installer"
	"wsl-dev-setup/internal/logger"
	"wsl-dev-setup/internal/probe"
	"wsl-dev-setup/internal/report"
	"wsl-dev-setup/internal/terminal"
)

// statusCmd probes the current machine state without changing anything:
// the same checks the installer uses to decide skip-vs-act, printed as a
// report.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current state of everything the installer manages",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()

		printState("WSL subsystem", probe.Subsystem())
		printState(plan.WSL.Distribution+" distribution", probe.Distribution(plan.WSL.Distribution))
		for _, feature := range plan.Features {
			printState("Windows feature "+feature, probe.Feature(feature))
		}
		for _, pkg := range plan.Packages {
			printState(pkg.Name, probe.Package(pkg.ID))
		}
		printState(plan.Font.Name+" font", installer.FontInstalled(plan.Font.Name))

		path := settingsPath
		if path == "" {
			path = terminal.SettingsPath()
		}
		settingsState := probe.Present
		if _, err := os.Stat(path); err != nil {
			settingsState = probe.Absent
		}
		printState("terminal settings file", settingsState)
		printState("network connectivity", probe.Network(networkProbeURL))

		if last := report.Load(reportPath); last != nil {
			logger.Info("[INFO] Last run %s: %d succeeded, %d already satisfied, %d failed in %s\n",
				last.StartedAt.Format("2006-01-02 15:04"), last.Succeeded, last.Skipped, last.Failed, last.Elapsed)
		}
	},
}

func printState(label string, state probe.State) {
	if state == probe.Present {
		logger.Info("[INFO] %-40s %s\n", label, state)
		return
	}
	logger.Warn("[WARN] %-40s %s\n", label, state)
}

func init() {
	statusCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to plan file")
	rootCmd.AddCommand(statusCmd)
}
