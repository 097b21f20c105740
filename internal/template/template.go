// Package template loads the seed template object and the word lists it is
// expanded against.
package template

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// LoadError indicates unusable input: an unreadable file or a template that
// does not match the expected shape.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "load failed"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// Template is the seed object whose json_data fields are rewritten to
// produce variants. The underlying map is never handed out for mutation;
// callers work on copies obtained via Clone.
type Template struct {
	root map[string]any
}

// JSONData returns the mapping of transformable fields. Load guarantees it
// is present and object-valued.
func (t *Template) JSONData() map[string]any {
	data, _ := t.root["json_data"].(map[string]any)
	return data
}

// Clone returns a structurally independent deep copy of the template object.
func (t *Template) Clone() map[string]any {
	return cloneValue(t.root).(map[string]any)
}

// cloneValue copies maps and slices recursively; JSON scalars are immutable
// and shared as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// Load reads a template file: a JSON array whose first element is the seed
// object carrying an object-valued json_data field.
func Load(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open template", Err: err}
	}
	defer f.Close()

	tpl, err := LoadFromReader(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}
	return tpl, nil
}

// LoadFromReader parses template JSON from r. Useful for testing with
// in-memory data.
func LoadFromReader(r io.Reader) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Reason: "cannot read template", Err: err}
	}

	var list []any
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &LoadError{Reason: "template must be a valid JSON array", Err: err}
	}
	if len(list) == 0 {
		return nil, &LoadError{Reason: "template array must contain at least one object"}
	}

	root, ok := list[0].(map[string]any)
	if !ok {
		return nil, &LoadError{Reason: "first template element must be an object"}
	}
	if jsonData, ok := root["json_data"].(map[string]any); !ok || jsonData == nil {
		return nil, &LoadError{Reason: "template object must carry an object-valued json_data field"}
	}

	return &Template{root: root}, nil
}
