package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	plan, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), plan)
	assert.Equal(t, "Ubuntu", plan.WSL.Distribution)
	assert.Equal(t, 2, plan.WSL.Version)
	assert.Equal(t, "wsl", plan.Terminal.Marker)
	assert.NotEmpty(t, plan.Packages)
	assert.Contains(t, plan.Features, "VirtualMachinePlatform")
}

func TestLoadOverridesSections(t *testing.T) {
	path := writePlan(t, `
plan:
  packages:
    - id: Neovim.Neovim
      name: Neovim
  wsl:
    distribution: Debian
    version: 2
  terminal:
    marker: Debian
`)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []Package{{ID: "Neovim.Neovim", Name: "Neovim"}}, plan.Packages)
	assert.Equal(t, "Debian", plan.WSL.Distribution)
	assert.Equal(t, "Debian", plan.Terminal.Marker)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Features, plan.Features)
	assert.Equal(t, Default().Font, plan.Font)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writePlan(t, `
plan:
  terminal:
    marker: Ubuntu
`)

	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ubuntu", plan.Terminal.Marker)
	assert.Equal(t, Default().Packages, plan.Packages)
	assert.Equal(t, Default().WSL, plan.WSL)
}

func TestLoadBadYAML(t *testing.T) {
	path := writePlan(t, "plan: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
