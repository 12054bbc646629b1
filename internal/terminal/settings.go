package terminal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"wsl-dev-setup/internal/logger"
)

// ErrSettingsMissing is returned when the settings file does not exist,
// meaning Windows Terminal has never run (or is not installed). Callers
// fall back to installing the application instead of treating this as a
// hard failure.
var ErrSettingsMissing = errors.New("terminal settings file not found")

// ConfigParseError means the settings file exists but is not valid JSON.
// Fatal to the merge only: the file is left exactly as it was and the
// orchestrator carries on with the remaining steps.
type ConfigParseError struct {
	Path  string
	Cause error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("cannot parse terminal settings %s: %v", e.Path, e.Cause)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Cause
}

// SettingsPath returns the per-user location of the Windows Terminal
// settings file (the packaged-app LocalState path).
func SettingsPath() string {
	return filepath.Join(os.Getenv("LOCALAPPDATA"),
		"Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json")
}

// LoadSettings reads and parses the settings document as a generic JSON
// tree so unknown keys are preserved verbatim through a merge round trip.
func LoadSettings(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrSettingsMissing, path)
		}
		return nil, fmt.Errorf("failed to read terminal settings %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ConfigParseError{Path: path, Cause: err}
	}
	return doc, nil
}

// SaveSettings serializes the document and replaces the settings file via
// a temp-file rename, so a failed write never leaves a half-written
// settings.json behind.
func SaveSettings(path string, doc map[string]any) error {
	if depthExceeds(doc, maxDepth) {
		return fmt.Errorf("%w (limit %d), refusing to write", ErrTooDeep, maxDepth)
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal terminal settings: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Wrote %d bytes to %s\n", len(raw), path)
	return nil
}

// BackupSettings copies the current settings file to a timestamped sibling
// (<path>.backup.<timestamp>) and returns the backup path. Anything the
// merge then does to the original is restorable from that copy. Nanosecond
// resolution keeps back-to-back runs from overwriting each other's
// restore point.
func BackupSettings(path string) (string, error) {
	backup := fmt.Sprintf("%s.backup.%d", path, time.Now().UnixNano())

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open settings for backup: %w", err)
	}
	defer in.Close()

	out, err := os.Create(backup)
	if err != nil {
		return "", fmt.Errorf("failed to create backup %s: %w", backup, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close backup file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("failed to copy settings to backup: %w", err)
	}
	return backup, nil
}

// ApplyScheme is the full read-modify-write cycle: load, merge, back up,
// write. The backup is taken after the merge succeeds in memory but
// before the file is touched, so every write is preceded by a restore
// point and a failed merge leaves no backup litter.
func ApplyScheme(path string, scheme Scheme, selector ProfileSelector) error {
	doc, err := LoadSettings(path)
	if err != nil {
		return err
	}

	if err := MergeColorScheme(doc, scheme, selector); err != nil {
		return err
	}

	backup, err := BackupSettings(path)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Backed up terminal settings to %s\n", backup)

	return SaveSettings(path, doc)
}
