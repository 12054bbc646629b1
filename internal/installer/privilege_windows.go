//go:build windows

package installer

import "golang.org/x/sys/windows"

// Elevated reports whether the current process runs with administrator
// rights, by asking the process token.
func Elevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
