//go:build !windows

package installer

// registerFont is a no-op off Windows: fontconfig discovers files dropped
// into ~/.local/share/fonts on its own.
func registerFont(path string) error {
	return nil
}
