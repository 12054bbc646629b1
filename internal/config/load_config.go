package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wsl-dev-setup/internal/logger"
)

// Default returns the built-in installation plan. The tool is fully usable
// without a config file; a config.yaml only overrides these values.
func Default() Plan {
	return Plan{
		Packages: []Package{
			{ID: "Microsoft.WindowsTerminal", Name: "Windows Terminal"},
			{ID: "Git.Git", Name: "Git"},
			{ID: "Microsoft.VisualStudioCode", Name: "Visual Studio Code"},
			{ID: "Microsoft.PowerShell", Name: "PowerShell 7"},
		},
		Features: []string{
			"Microsoft-Windows-Subsystem-Linux",
			"VirtualMachinePlatform",
		},
		WSL: WSL{
			Distribution: "Ubuntu",
			Version:      2,
		},
		Font: Font{
			Name:  "JetBrainsMono",
			Repo:  "ryanoasis/nerd-fonts",
			Tag:   "v3.2.1",
			Asset: "JetBrainsMono.zip",
		},
		Terminal: Terminal{
			Marker: "wsl",
		},
	}
}

// Load reads the installation plan from a YAML file. A missing file is not
// an error: the built-in defaults are returned so the tool runs config-free.
// Sections absent from the file keep their default values, so a config that
// only lists extra packages does not have to restate the WSL section.
func Load(path string) (Plan, error) {
	plan := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No config file at %s, using built-in defaults\n", path)
			return plan, nil
		}
		return plan, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Wrapper struct mirrors the file layout: plan: { packages: ..., wsl: ... }
	wrapper := struct {
		Plan struct {
			Packages []Package `yaml:"packages"`
			Features []string  `yaml:"features"`
			WSL      *WSL      `yaml:"wsl"`
			Font     *Font     `yaml:"font"`
			Terminal *Terminal `yaml:"terminal"`
		} `yaml:"plan"`
	}{}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return plan, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	if len(wrapper.Plan.Packages) > 0 {
		plan.Packages = wrapper.Plan.Packages
	}
	if len(wrapper.Plan.Features) > 0 {
		plan.Features = wrapper.Plan.Features
	}
	if wrapper.Plan.WSL != nil {
		plan.WSL = *wrapper.Plan.WSL
	}
	if wrapper.Plan.Font != nil {
		plan.Font = *wrapper.Plan.Font
	}
	if wrapper.Plan.Terminal != nil {
		plan.Terminal = *wrapper.Plan.Terminal
	}

	logger.Debug("[DEBUG] Loaded plan from %s: %d packages, %d features\n",
		path, len(plan.Packages), len(plan.Features))
	return plan, nil
}
