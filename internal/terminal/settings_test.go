package terminal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func backups(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".backup.*")
	require.NoError(t, err)
	return matches
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.ErrorIs(t, err, ErrSettingsMissing)
}

func TestLoadSettingsMalformedJSON(t *testing.T) {
	path := writeSettings(t, `{"profiles": [`)

	_, err := LoadSettings(path)

	var parseErr *ConfigParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestApplySchemeWritesBackupAndMergedFile(t *testing.T) {
	original := `{"profiles":{"list":[{"name":"Ubuntu-22.04","commandline":"wsl.exe -d Ubuntu"}]}}`
	path := writeSettings(t, original)

	require.NoError(t, ApplyScheme(path, DefaultScheme(), MarkerSelector("wsl")))

	// The backup holds the pre-merge content byte for byte.
	backupFiles := backups(t, path)
	require.Len(t, backupFiles, 1)
	backupContent, err := os.ReadFile(backupFiles[0])
	require.NoError(t, err)
	assert.Equal(t, original, string(backupContent))

	// The written file parses and carries the merge result.
	doc, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"coolnight"}, schemeNames(doc))
	profile := doc["profiles"].(map[string]any)["list"].([]any)[0].(map[string]any)
	assert.Equal(t, "coolnight", profile["colorScheme"])

	// No stray temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestApplySchemeMalformedLeavesFileUntouched(t *testing.T) {
	original := `{"schemes": not json`
	path := writeSettings(t, original)

	err := ApplyScheme(path, DefaultScheme(), MarkerSelector("wsl"))

	var parseErr *ConfigParseError
	require.ErrorAs(t, err, &parseErr)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(content))
	assert.Empty(t, backups(t, path), "a failed merge must not write a backup")
}

func TestApplySchemeMissingFileDoesNotCreateIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	err := ApplyScheme(path, DefaultScheme(), MarkerSelector("wsl"))
	require.ErrorIs(t, err, ErrSettingsMissing)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApplySchemeTwiceKeepsSingleEntry(t *testing.T) {
	path := writeSettings(t, `{"profiles":{"list":[{"name":"Ubuntu","commandline":"wsl.exe"}]}}`)
	scheme := DefaultScheme()
	selector := MarkerSelector("wsl")

	require.NoError(t, ApplyScheme(path, scheme, selector))
	require.NoError(t, ApplyScheme(path, scheme, selector))

	doc, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"coolnight"}, schemeNames(doc))
	assert.Len(t, backups(t, path), 2, "each write takes its own restore point")
}

func TestSaveSettingsRefusesTooDeepDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	doc := map[string]any{}
	cursor := doc
	for i := 0; i < maxDepth+1; i++ {
		next := map[string]any{}
		cursor["nested"] = next
		cursor = next
	}

	require.ErrorIs(t, SaveSettings(path, doc), ErrTooDeep)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "an over-deep document must never be written")
}

func TestSaveSettingsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := map[string]any{"schemes": []any{}, "theme": "dark"}

	require.NoError(t, SaveSettings(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var loaded map[string]any
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, "dark", loaded["theme"])
}
