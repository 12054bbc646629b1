//go:build windows

package installer

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"

	"wsl-dev-setup/internal/logger"
)

// registerFont records an installed font face under the per-user Fonts
// registry key so applications pick it up without a reboot-and-rescan.
func registerFont(path string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER,
		`Software\Microsoft\Windows NT\CurrentVersion\Fonts`, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + " (TrueType)"
	if err := key.SetStringValue(name, path); err != nil {
		return err
	}
	logger.Debug("[DEBUG] Registered font %q -> %s\n", name, path)
	return nil
}
