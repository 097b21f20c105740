package template

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoadWordlist reads a newline-delimited word list, dropping blank lines and
// duplicates while preserving first-seen order. An empty result is not an
// error; it is logged and the caller decides what to do with it.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open wordlist", Err: err}
	}
	defer f.Close()

	words, err := LoadWordlistFromReader(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return nil, err
	}

	if len(words) == 0 {
		slog.Warn("wordlist contains no usable words", "path", path)
	}
	return words, nil
}

// LoadWordlistFromReader reads words from r with the same filtering rules as
// LoadWordlist.
func LoadWordlistFromReader(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Reason: "cannot read wordlist", Err: err}
	}

	return words, nil
}
