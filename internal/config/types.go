package config

// Package represents one winget-managed application to install.
// - ID: exact winget package identifier (matched with --exact).
// - Name: human label used in log output and the run report.
type Package struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// WSL describes the desired state of the Windows Subsystem for Linux:
// which distribution to install and make default, and which WSL version
// new distributions should use.
type WSL struct {
	Distribution string `yaml:"distribution"`
	Version      int    `yaml:"version"`
}

// Font represents a downloadable font archive published as a GitHub
// release asset (e.g. a Nerd Font zip).
type Font struct {
	Name  string `yaml:"name"`  // Font family name, used to match installed files
	Repo  string `yaml:"repo"`  // GitHub repo, e.g. ryanoasis/nerd-fonts
	Tag   string `yaml:"tag"`   // Release tag, e.g. v3.2.1
	Asset string `yaml:"asset"` // Asset filename within the release
}

// Terminal holds the terminal-configuration knobs: the marker substring
// that selects which profiles get the color scheme applied. The scheme
// itself is a fixed value (terminal.DefaultScheme), not configuration.
type Terminal struct {
	Marker string `yaml:"marker"`
}

// Plan is the top-level structure describing everything the tool should
// install and configure on this machine.
type Plan struct {
	Packages []Package `yaml:"packages"`
	Features []string  `yaml:"features"` // Windows optional feature names
	WSL      WSL       `yaml:"wsl"`
	Font     Font      `yaml:"font"`
	Terminal Terminal  `yaml:"terminal"`
}
