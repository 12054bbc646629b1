package terminal

import (
	"errors"
	"fmt"
	"strings"

	"wsl-dev-setup/internal/logger"
)

// maxDepth bounds the nesting the merge will process. Real settings.json
// documents nest a handful of levels; the bound only exists to stop
// runaway recursion on malformed input. A document that actually exceeds
// it is rejected outright, never silently truncated.
const maxDepth = 100

// ErrTooDeep is returned when the settings document nests beyond maxDepth.
var ErrTooDeep = errors.New("settings document nests too deeply")

// ProfileSelector decides whether a profile entry should be switched to
// the merged scheme.
type ProfileSelector func(profile map[string]any) bool

// MarkerSelector selects profiles whose name, source, or commandline
// contains the marker substring. Matching is case-sensitive.
func MarkerSelector(marker string) ProfileSelector {
	return func(profile map[string]any) bool {
		for _, field := range []string{"name", "source", "commandline"} {
			if value, ok := profile[field].(string); ok && strings.Contains(value, marker) {
				return true
			}
		}
		return false
	}
}

// MergeColorScheme injects the scheme into the settings document and points
// every profile the selector matches at it. The document is a generic JSON
// tree, so keys the tool does not understand round-trip untouched.
//
// The scheme is appended to the `schemes` list only when no entry with the
// same name exists. An existing entry is never updated in place: editing a
// scheme definition in this tool and re-running the merge will not refresh
// a previously written copy. Documented behavior, on purpose — remove the
// old entry from settings.json to pick up new colors.
func MergeColorScheme(doc map[string]any, scheme Scheme, selector ProfileSelector) error {
	if depthExceeds(doc, maxDepth) {
		return fmt.Errorf("%w (limit %d)", ErrTooDeep, maxDepth)
	}

	entry, err := scheme.entry()
	if err != nil {
		return fmt.Errorf("failed to encode scheme %q: %w", scheme.Name, err)
	}

	schemes, ok := doc["schemes"].([]any)
	if !ok {
		if _, exists := doc["schemes"]; exists {
			return fmt.Errorf("settings key \"schemes\" is not a list")
		}
		schemes = []any{}
	}

	if !schemeExists(schemes, scheme.Name) {
		schemes = append(schemes, entry)
		logger.Info("[INFO] Added color scheme %q to terminal settings\n", scheme.Name)
	} else {
		logger.Debug("[DEBUG] Scheme %q already present, leaving existing entry untouched\n", scheme.Name)
	}
	doc["schemes"] = schemes

	updated := 0
	for _, profile := range profileList(doc) {
		if selector(profile) {
			profile["colorScheme"] = scheme.Name
			updated++
		}
	}
	logger.Debug("[DEBUG] Pointed %d profile(s) at scheme %q\n", updated, scheme.Name)
	return nil
}

// schemeExists reports whether any entry in the schemes list carries the
// given name.
func schemeExists(schemes []any, name string) bool {
	for _, raw := range schemes {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if entryName, ok := entry["name"].(string); ok && entryName == name {
			return true
		}
	}
	return false
}

// profileList extracts the profile entries from the document. Windows
// Terminal accepts both the expanded form `profiles: {list: [...]}` and
// the legacy bare-array form `profiles: [...]`; both are handled.
func profileList(doc map[string]any) []map[string]any {
	var raw []any
	switch profiles := doc["profiles"].(type) {
	case map[string]any:
		raw, _ = profiles["list"].([]any)
	case []any:
		raw = profiles
	}

	var list []map[string]any
	for _, item := range raw {
		if profile, ok := item.(map[string]any); ok {
			list = append(list, profile)
		}
	}
	return list
}

// depthExceeds reports whether the tree nests deeper than limit levels.
func depthExceeds(v any, limit int) bool {
	if limit < 0 {
		return true
	}
	switch t := v.(type) {
	case map[string]any:
		for _, child := range t {
			if depthExceeds(child, limit-1) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if depthExceeds(child, limit-1) {
				return true
			}
		}
	}
	return false
}
