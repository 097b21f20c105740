package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromReader(t *testing.T) {
	doc := `[{"id": 7, "json_data": {"user": "admin", "count": 3}}]`

	tpl, err := LoadFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	data := tpl.JSONData()
	assert.Equal(t, "admin", data["user"])
	assert.Equal(t, float64(3), data["count"])
}

func TestLoadFromReader_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"invalid JSON", `{not json`, "valid JSON array"},
		{"object not array", `{"json_data": {}}`, "valid JSON array"},
		{"empty array", `[]`, "at least one object"},
		{"first element not object", `["hello"]`, "must be an object"},
		{"missing json_data", `[{"id": 1}]`, "json_data"},
		{"json_data not object", `[{"json_data": "nope"}]`, "json_data"},
		{"json_data null", `[{"json_data": null}]`, "json_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.doc))
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoad_SetsPathOnShapeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestClone_IsDeepAndIndependent(t *testing.T) {
	doc := `[{"tags": ["a", "b"], "json_data": {"user": "admin", "nested": {"x": 1}}}]`
	tpl, err := LoadFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	first := tpl.Clone()
	second := tpl.Clone()

	first["json_data"].(map[string]any)["user"] = "mutated"
	first["json_data"].(map[string]any)["nested"].(map[string]any)["x"] = 99
	first["tags"].([]any)[0] = "z"

	assert.Equal(t, "admin", tpl.JSONData()["user"], "template must not see clone mutations")
	assert.Equal(t, "admin", second["json_data"].(map[string]any)["user"], "sibling clones must be independent")
	assert.Equal(t, float64(1), second["json_data"].(map[string]any)["nested"].(map[string]any)["x"])
	assert.Equal(t, "a", second["tags"].([]any)[0])
}

func TestLoadWordlistFromReader(t *testing.T) {
	input := "alpha\n\n  beta  \nalpha\ngamma\nbeta\n"

	words, err := LoadWordlistFromReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words, "order preserved, duplicates and blanks dropped")
}

func TestLoadWordlistFromReader_Empty(t *testing.T) {
	words, err := LoadWordlistFromReader(strings.NewReader("\n   \n\n"))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadWordlist_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\none\n"), 0o644))

	words, err := LoadWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}

func TestLoadWordlist_MissingFile(t *testing.T) {
	_, err := LoadWordlist(filepath.Join(t.TempDir(), "missing.txt"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}
