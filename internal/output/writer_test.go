package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_IndentedArray(t *testing.T) {
	var buf bytes.Buffer
	objects := []map[string]any{
		{"json_data": map[string]any{"user": "admin"}},
	}

	require.NoError(t, NewWriter().Write(&buf, objects))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n    {"), "expected 4-space indented array, got %q", out)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "admin", parsed[0]["json_data"].(map[string]any)["user"])
}

func TestWrite_PreservesNonASCIILiterally(t *testing.T) {
	var buf bytes.Buffer
	objects := []map[string]any{
		{"json_data": map[string]any{"animal": "ñandú", "tag": "<a&b>"}},
	}

	require.NoError(t, NewWriter().Write(&buf, objects))

	out := buf.String()
	assert.Contains(t, out, "ñandú")
	assert.Contains(t, out, "<a&b>")
	assert.NotContains(t, out, `\u`)
}

func TestWrite_EmptyInputIsEmptyArray(t *testing.T) {
	for _, objects := range [][]map[string]any{nil, {}} {
		var buf bytes.Buffer
		require.NoError(t, NewWriter().Write(&buf, objects))
		assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	objects := []map[string]any{{"json_data": map[string]any{"a": "1"}}}

	require.NoError(t, NewWriter().WriteFile(objects, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 1)
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	err := NewWriter().WriteFile(nil, filepath.Join(t.TempDir(), "no", "such", "dir", "out.json"))

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, err.Error(), "out.json")
}
