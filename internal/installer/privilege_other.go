//go:build !windows

package installer

import "os"

// Elevated reports whether the current process runs with elevated rights.
// On non-Windows hosts (development, CI) that means root.
func Elevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
