package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wsl-dev-setup/internal/config"
	"wsl-dev-setup/internal/installer"
	"wsl-dev-setup/internal/logger"
	"wsl-dev-setup/internal/probe"
	"wsl-dev-setup/internal/report"
	"wsl-dev-setup/internal/steps"
	"wsl-dev-setup/internal/terminal"
)

// configPath holds the path to the optional plan YAML file, passed via
// the `--config` or `-c` flag. When the file is absent the built-in plan
// is used.
var configPath string

// settingsPath optionally overrides the Windows Terminal settings.json
// location; the default is the per-user packaged-app path.
var settingsPath string

// assumeYes answers every confirmation prompt with yes, for unattended runs.
var assumeYes bool

// reportPath is where the last run's report is written.
var reportPath = "report.json"

// networkProbeURL is the endpoint used to decide whether downloads stand
// a chance. The GitHub API is already a hard dependency of the font step.
const networkProbeURL = "https://api.github.com"

// windowsTerminalID is the winget package installed when the settings
// merge finds no settings file to merge into.
const windowsTerminalID = "Microsoft.WindowsTerminal"

// installCmd runs the whole plan: prerequisites, optional features, the
// WSL subsystem and distribution, winget packages, the terminal font, and
// the settings.json color scheme merge.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install and configure the full WSL development environment",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()

		list := []steps.Step{elevationStep(), networkStep()}
		list = append(list, featureSteps(plan)...)
		list = append(list, wslSteps(plan)...)
		list = append(list, packageSteps(plan)...)
		list = append(list, fontStep(plan), terminalStep(plan))

		runSteps(list)
	},
}

// installFeaturesCmd enables only the Windows optional features.
var installFeaturesCmd = &cobra.Command{
	Use:   "features",
	Short: "Enable only the required Windows optional features",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()
		runSteps(append([]steps.Step{elevationStep()}, featureSteps(plan)...))
	},
}

// installWSLCmd installs only the WSL subsystem and distribution.
var installWSLCmd = &cobra.Command{
	Use:   "wsl",
	Short: "Install only the WSL subsystem and distribution",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()
		list := []steps.Step{elevationStep(), networkStep()}
		list = append(list, wslSteps(plan)...)
		runSteps(list)
	},
}

// installPackagesCmd installs only the winget packages.
var installPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Install only the winget packages",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()
		runSteps(append([]steps.Step{networkStep()}, packageSteps(plan)...))
	},
}

// installFontsCmd installs only the terminal font.
var installFontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Install only the terminal font",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()
		runSteps([]steps.Step{networkStep(), fontStep(plan)})
	},
}

// installTerminalCmd merges only the color scheme into settings.json.
var installTerminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Merge only the color scheme into the terminal settings",
	Run: func(cmd *cobra.Command, args []string) {
		plan := loadPlan()
		runSteps([]steps.Step{terminalStep(plan)})
	},
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	installCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to plan file")
	installCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Override the terminal settings.json path")
	installCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Assume yes on all prompts")

	installCmd.AddCommand(installFeaturesCmd)
	installCmd.AddCommand(installWSLCmd)
	installCmd.AddCommand(installPackagesCmd)
	installCmd.AddCommand(installFontsCmd)
	installCmd.AddCommand(installTerminalCmd)
	rootCmd.AddCommand(installCmd)
}

// loadPlan reads the plan, exiting on an unparsable config file. A missing
// file is fine (built-in defaults); a broken one is a user error that must
// not be silently papered over.
func loadPlan() config.Plan {
	plan, err := config.Load(configPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
	return plan
}

// runSteps drives the orchestrator over the assembled list, persists the
// run report, prints the summary, and exits non-zero when a critical
// prerequisite failed.
func runSteps(list []steps.Step) {
	started := time.Now()
	rep, err := steps.RunAll(list)

	report.Save(reportPath, report.New(started, rep))

	succeeded, skipped, failed := rep.Counts()
	logger.Success("[DONE] %d succeeded, %d already satisfied, %d failed in %s\n",
		succeeded, skipped, failed, rep.Elapsed.Round(time.Millisecond))

	if err != nil {
		os.Exit(1)
	}
}

// elevationStep is the one mandatory prerequisite: the features and
// subsystem steps need administrator rights, so a non-elevated process
// aborts the run.
func elevationStep() steps.Step {
	return steps.Step{
		ID:       steps.IDElevation,
		Label:    "administrator privileges",
		Critical: true,
		Action: func() error {
			elevated, err := installer.Elevated()
			if err != nil {
				return err
			}
			if !elevated {
				return installer.ErrNotElevated
			}
			return nil
		},
	}
}

// networkStep warns when no connectivity is detected and lets the user
// continue at their own risk; declining makes it a critical failure.
func networkStep() steps.Step {
	return steps.Step{
		ID:       steps.IDNetwork,
		Label:    "network connectivity",
		Critical: true,
		Action: func() error {
			if probe.Network(networkProbeURL) == probe.Present {
				return nil
			}
			logger.Warn("[WARN] No network connectivity detected. Downloads and installs will likely fail.\n")
			if assumeYes || confirm("Continue without network?") {
				logger.Warn("[WARN] Continuing without confirmed network connectivity.\n")
				return nil
			}
			return probe.ErrNetworkUnavailable
		},
	}
}

// featureSteps enables each Windows optional feature the plan names.
func featureSteps(plan config.Plan) []steps.Step {
	var list []steps.Step
	for _, feature := range plan.Features {
		list = append(list, steps.Step{
			ID:     steps.IDFeature,
			Label:  "Windows feature " + feature,
			Probe:  func() probe.State { return probe.Feature(feature) },
			Action: func() error { return installer.EnableFeature(feature) },
		})
	}
	return list
}

// wslSteps installs the subsystem, pins the default WSL version, installs
// the distribution, and makes it the default. The version and default
// steps carry no probe: they are cheap assignments, safe to re-apply.
func wslSteps(plan config.Plan) []steps.Step {
	distro := plan.WSL.Distribution
	return []steps.Step{
		{
			ID:     steps.IDSubsystem,
			Label:  "WSL subsystem",
			Probe:  probe.Subsystem,
			Action: installer.InstallSubsystem,
		},
		{
			ID:     steps.IDWSLVersion,
			Label:  fmt.Sprintf("WSL default version %d", plan.WSL.Version),
			Action: func() error { return installer.SetDefaultVersion(plan.WSL.Version) },
		},
		{
			ID:     steps.IDDistribution,
			Label:  distro + " distribution",
			Probe:  func() probe.State { return probe.Distribution(distro) },
			Action: func() error { return installer.InstallDistribution(distro) },
		},
		{
			ID:     steps.IDDefaultDistribution,
			Label:  "default distribution " + distro,
			Action: func() error { return installer.SetDefaultDistribution(distro) },
		},
	}
}

// packageSteps installs each winget package the plan names.
func packageSteps(plan config.Plan) []steps.Step {
	var list []steps.Step
	for _, pkg := range plan.Packages {
		list = append(list, steps.Step{
			ID:     steps.IDPackage,
			Label:  pkg.Name,
			Probe:  func() probe.State { return probe.Package(pkg.ID) },
			Action: func() error { return installer.InstallPackage(pkg.ID) },
		})
	}
	return list
}

// fontStep installs the terminal font.
func fontStep(plan config.Plan) steps.Step {
	return steps.Step{
		ID:    steps.IDFont,
		Label: plan.Font.Name + " font",
		Probe: func() probe.State { return installer.FontInstalled(plan.Font.Name) },
		Action: func() error {
			_, err := installer.InstallFont(plan.Font)
			return err
		},
	}
}

// terminalStep merges the color scheme into settings.json and rewires the
// matching profiles. A missing settings file means Windows Terminal has
// never run here; the step falls back to installing it, and a rerun then
// performs the merge.
func terminalStep(plan config.Plan) steps.Step {
	return steps.Step{
		ID:    steps.IDTerminal,
		Label: "terminal color scheme",
		Action: func() error {
			path := settingsPath
			if path == "" {
				path = terminal.SettingsPath()
			}
			scheme := terminal.DefaultScheme()
			selector := terminal.MarkerSelector(plan.Terminal.Marker)

			err := terminal.ApplyScheme(path, scheme, selector)
			if errors.Is(err, terminal.ErrSettingsMissing) {
				logger.Warn("[WARN] No terminal settings found at %s. Installing Windows Terminal instead; run 'install terminal' again afterwards.\n", path)
				return installer.InstallPackage(windowsTerminalID)
			}
			return err
		},
	}
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
