// Package output serializes generated objects to their JSON output file.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteError indicates the output file could not be produced.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

const indent = "    "

// Writer emits generated objects as an indented JSON array.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes objects to w. Non-ASCII and HTML-significant characters
// are written literally, and a nil or empty input produces an empty array.
func (*Writer) Write(w io.Writer, objects []map[string]any) error {
	if objects == nil {
		objects = []map[string]any{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(objects)
}

// WriteFile serializes objects to path, failing with a WriteError on any I/O
// problem.
func (wr *Writer) WriteFile(objects []map[string]any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := wr.Write(f, objects); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
