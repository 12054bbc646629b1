package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wslDocument() map[string]any {
	return map[string]any{
		"defaultProfile": "{guid}",
		"profiles": map[string]any{
			"list": []any{
				map[string]any{"name": "Ubuntu-22.04", "commandline": "wsl.exe -d Ubuntu"},
				map[string]any{"name": "PowerShell", "commandline": "pwsh.exe", "colorScheme": "Campbell"},
			},
		},
	}
}

func schemeNames(doc map[string]any) []string {
	var names []string
	for _, raw := range doc["schemes"].([]any) {
		names = append(names, raw.(map[string]any)["name"].(string))
	}
	return names
}

func TestMergeColorSchemeAddsSchemeAndRewiresProfiles(t *testing.T) {
	doc := wslDocument()
	scheme := DefaultScheme()

	require.NoError(t, MergeColorScheme(doc, scheme, MarkerSelector("wsl")))

	assert.Equal(t, []string{"coolnight"}, schemeNames(doc))

	list := doc["profiles"].(map[string]any)["list"].([]any)
	ubuntu := list[0].(map[string]any)
	assert.Equal(t, "coolnight", ubuntu["colorScheme"])
}

func TestMergeColorSchemeIdempotent(t *testing.T) {
	doc := wslDocument()
	scheme := DefaultScheme()
	selector := MarkerSelector("wsl")

	require.NoError(t, MergeColorScheme(doc, scheme, selector))
	require.NoError(t, MergeColorScheme(doc, scheme, selector))

	assert.Equal(t, []string{"coolnight"}, schemeNames(doc), "second merge must not duplicate the scheme")
}

func TestMergeColorSchemeNeverUpdatesExistingEntry(t *testing.T) {
	existing := map[string]any{"name": "coolnight", "background": "#000000"}
	doc := map[string]any{"schemes": []any{existing}}

	require.NoError(t, MergeColorScheme(doc, DefaultScheme(), MarkerSelector("wsl")))

	schemes := doc["schemes"].([]any)
	require.Len(t, schemes, 1)
	// The stale entry wins; re-running the merge does not refresh colors.
	assert.Equal(t, "#000000", schemes[0].(map[string]any)["background"])
}

func TestMergeColorSchemeLeavesNonMatchingProfilesUntouched(t *testing.T) {
	doc := wslDocument()

	require.NoError(t, MergeColorScheme(doc, DefaultScheme(), MarkerSelector("wsl")))

	list := doc["profiles"].(map[string]any)["list"].([]any)
	pwsh := list[1].(map[string]any)
	assert.Equal(t, map[string]any{
		"name":        "PowerShell",
		"commandline": "pwsh.exe",
		"colorScheme": "Campbell",
	}, pwsh)
}

func TestMergeColorSchemePreservesUnrelatedKeys(t *testing.T) {
	doc := wslDocument()
	doc["actions"] = []any{map[string]any{"command": "paste", "keys": "ctrl+v"}}
	doc["useAcrylicInTabRow"] = true

	require.NoError(t, MergeColorScheme(doc, DefaultScheme(), MarkerSelector("wsl")))

	assert.Equal(t, true, doc["useAcrylicInTabRow"])
	assert.Equal(t, []any{map[string]any{"command": "paste", "keys": "ctrl+v"}}, doc["actions"])
	assert.Equal(t, "{guid}", doc["defaultProfile"])
}

func TestMergeColorSchemeHandlesBareProfileArray(t *testing.T) {
	doc := map[string]any{
		"profiles": []any{
			map[string]any{"name": "Ubuntu", "source": "Windows.Terminal.Wsl"},
		},
	}

	require.NoError(t, MergeColorScheme(doc, DefaultScheme(), MarkerSelector("Wsl")))

	profile := doc["profiles"].([]any)[0].(map[string]any)
	assert.Equal(t, "coolnight", profile["colorScheme"])
}

func TestMergeColorSchemeCreatesSchemesList(t *testing.T) {
	doc := map[string]any{}

	require.NoError(t, MergeColorScheme(doc, DefaultScheme(), MarkerSelector("wsl")))

	assert.Equal(t, []string{"coolnight"}, schemeNames(doc))
}

func TestMergeColorSchemeRejectsTooDeepDocument(t *testing.T) {
	doc := map[string]any{}
	cursor := doc
	for i := 0; i < maxDepth+1; i++ {
		next := map[string]any{}
		cursor["nested"] = next
		cursor = next
	}

	err := MergeColorScheme(doc, DefaultScheme(), MarkerSelector("wsl"))
	require.ErrorIs(t, err, ErrTooDeep)
}

func TestMarkerSelectorIsCaseSensitive(t *testing.T) {
	selector := MarkerSelector("wsl")

	assert.True(t, selector(map[string]any{"commandline": "wsl.exe -d Ubuntu"}))
	assert.True(t, selector(map[string]any{"name": "my wsl shell"}))
	assert.False(t, selector(map[string]any{"source": "Windows.Terminal.Wsl"}), "Wsl does not contain wsl")
	assert.False(t, selector(map[string]any{"name": "PowerShell"}))
	assert.False(t, selector(map[string]any{"hidden": true}))
}

func TestDefaultSchemeHasAllColorRoles(t *testing.T) {
	entry, err := DefaultScheme().entry()
	require.NoError(t, err)

	// name + 4 surface colors + 16 ANSI roles.
	assert.Len(t, entry, 21)
	for role, value := range entry {
		assert.NotEmpty(t, value, "color role %s is empty", role)
	}
}
