// Package engine drives the expansion of a template against a word sequence,
// producing the ordered list of derived objects.
package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"

	"github.com/c05m4r/cambalache/internal/config"
	"github.com/c05m4r/cambalache/internal/output"
	"github.com/c05m4r/cambalache/internal/template"
	"github.com/c05m4r/cambalache/internal/transform"
)

// minGeneratedValues is the floor on the synthetic word count in sequential
// generator mode.
const minGeneratedValues = 10

// Loader abstracts template and wordlist input so tests can supply in-memory
// fixtures.
type Loader interface {
	LoadTemplate(path string) (*template.Template, error)
	LoadWordlist(path string) ([]string, error)
}

// Writer abstracts output serialization.
type Writer interface {
	WriteFile(objects []map[string]any, path string) error
}

type fileLoader struct{}

func (fileLoader) LoadTemplate(path string) (*template.Template, error) {
	return template.Load(path)
}

func (fileLoader) LoadWordlist(path string) ([]string, error) {
	return template.LoadWordlist(path)
}

// Engine owns one expansion run. Engines are single-use: the selected
// strategy captures per-run state in generator mode.
type Engine struct {
	cfg    *config.Config
	loader Loader
	writer Writer
	log    *slog.Logger

	tpl      *template.Template
	words    []string
	targets  []string
	strategy transform.Strategy
	filter   *vm.Program
}

// New builds an engine for cfg using the file-based loader and writer.
func New(cfg *config.Config) *Engine {
	return NewWithCollaborators(cfg, fileLoader{}, output.NewWriter())
}

// NewWithCollaborators builds an engine with explicit I/O collaborators.
func NewWithCollaborators(cfg *config.Config, loader Loader, writer Writer) *Engine {
	return &Engine{
		cfg:    cfg,
		loader: loader,
		writer: writer,
		log:    slog.With("run_id", uuid.New().String()),
	}
}

// Process runs load, field selection, expansion and write, returning the
// number of objects written. Empty word sequences and empty target-field
// sets still write an (empty) output file and succeed with 0.
func (e *Engine) Process() (int, error) {
	if e.cfg.Filter != "" {
		program, err := expr.Compile(e.cfg.Filter)
		if err != nil {
			return 0, &config.ConfigError{Reason: fmt.Sprintf("invalid filter expression: %v", err)}
		}
		e.filter = program
	}

	if err := e.loadInputs(); err != nil {
		return 0, err
	}
	if err := e.selectTargetFields(); err != nil {
		return 0, err
	}

	if len(e.words) == 0 {
		e.log.Warn("word sequence is empty, writing empty output")
		return 0, e.writer.WriteFile(nil, e.cfg.OutputPath)
	}
	if len(e.targets) == 0 {
		e.log.Warn("no target fields selected, writing empty output")
		return 0, e.writer.WriteFile(nil, e.cfg.OutputPath)
	}

	e.log.Info("expanding template",
		"mode", e.cfg.ModeDescription(),
		"words", len(e.words),
		"fields", len(e.targets))

	var results []map[string]any
	if e.cfg.IsGenerationMode() {
		results = e.expandPerField()
	} else {
		results = e.expandUniform()
	}

	if e.filter != nil {
		filtered, err := e.applyFilter(results)
		if err != nil {
			return 0, err
		}
		e.log.Debug("filter applied", "kept", len(filtered), "dropped", len(results)-len(filtered))
		results = filtered
	}

	if err := e.writer.WriteFile(results, e.cfg.OutputPath); err != nil {
		return 0, err
	}
	return len(results), nil
}

// loadInputs loads the template and the word sequence. Generator mode never
// touches the wordlist file; it synthesizes the ordinals "1".."N" with
// N = max(field count, minGeneratedValues).
func (e *Engine) loadInputs() error {
	tpl, err := e.loader.LoadTemplate(e.cfg.TemplatePath)
	if err != nil {
		return err
	}
	e.tpl = tpl

	if e.cfg.IsGeneratorMode() {
		n := len(tpl.JSONData())
		if n < minGeneratedValues {
			n = minGeneratedValues
		}
		e.words = make([]string, n)
		for i := range e.words {
			e.words[i] = strconv.Itoa(i + 1)
		}
		return nil
	}

	words, err := e.loader.LoadWordlist(e.cfg.WordlistPath)
	if err != nil {
		return err
	}
	e.words = words
	return nil
}

// selectTargetFields computes the fields to modify and picks the strategy.
// Targets are materialized once per run and sorted so iteration order is
// stable within a run and reproducible across runs.
func (e *Engine) selectTargetFields() error {
	data := e.tpl.JSONData()
	available := make(map[string]struct{}, len(data))
	for name := range data {
		available[name] = struct{}{}
	}

	var targets []string
	switch {
	case e.cfg.IsGeneratorMode():
		if _, ok := available[e.cfg.GenField]; !ok {
			return &config.ConfigError{
				Reason: fmt.Sprintf("field %q passed to --gen does not exist in json_data", e.cfg.GenField),
			}
		}
		targets = []string{e.cfg.GenField}
		e.strategy = e.cfg.Strategy(stringValue(data[e.cfg.GenField]))

	case len(e.cfg.IncludeFields) > 0:
		seen := make(map[string]struct{}, len(e.cfg.IncludeFields))
		var missing []string
		for _, name := range e.cfg.IncludeFields {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if _, ok := available[name]; ok {
				targets = append(targets, name)
			} else {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			e.log.Warn("included fields not present in json_data", "fields", strings.Join(missing, ", "))
		}
		if len(targets) == 0 {
			return &config.ConfigError{
				Reason: fmt.Sprintf("none of the included fields (%s) exist in json_data",
					strings.Join(e.cfg.IncludeFields, ", ")),
			}
		}
		e.strategy = e.cfg.Strategy("")

	case len(e.cfg.IgnoreFields) > 0:
		ignored := make(map[string]struct{}, len(e.cfg.IgnoreFields))
		for _, name := range e.cfg.IgnoreFields {
			ignored[name] = struct{}{}
		}
		for name := range available {
			if _, skip := ignored[name]; !skip {
				targets = append(targets, name)
			}
		}
		if len(targets) == 0 && len(available) > 0 {
			e.log.Warn("ignore list leaves no fields to modify", "ignored", strings.Join(e.cfg.IgnoreFields, ", "))
		}
		e.strategy = e.cfg.Strategy("")

	default:
		for name := range available {
			targets = append(targets, name)
		}
		e.strategy = e.cfg.Strategy("")
	}

	sort.Strings(targets)
	e.targets = targets
	return nil
}

// expandPerField produces one object per (word, field, modification) triple,
// words outermost so output order follows the word sequence. The Both
// strategy yields two adjacent objects per pair, prefixed form first.
func (e *Engine) expandPerField() []map[string]any {
	data := e.tpl.JSONData()

	var results []map[string]any
	for _, word := range e.words {
		for _, field := range e.targets {
			original := stringValue(data[field])
			for _, mod := range e.strategy.Apply(original, word) {
				obj := e.tpl.Clone()
				jsonData := obj["json_data"].(map[string]any)
				if _, ok := jsonData[field]; !ok {
					// Should not happen: targets come from the same map.
					e.log.Warn("target field missing from copy, skipping", "field", field)
					continue
				}
				jsonData[field] = mod.FieldValue
				results = append(results, obj)
			}
		}
	}
	return results
}

// expandUniform produces one object per word with every target field set to
// the same replacement value.
func (e *Engine) expandUniform() []map[string]any {
	var results []map[string]any
	for _, word := range e.words {
		obj := e.tpl.Clone()
		jsonData := obj["json_data"].(map[string]any)

		value := e.strategy.Apply("", word)[0].FieldValue
		for _, field := range e.targets {
			if _, ok := jsonData[field]; !ok {
				e.log.Warn("target field missing from copy, skipping", "field", field)
				continue
			}
			jsonData[field] = value
		}
		results = append(results, obj)
	}
	return results
}

// applyFilter keeps the objects whose json_data satisfies the compiled
// filter expression, preserving order.
func (e *Engine) applyFilter(objects []map[string]any) ([]map[string]any, error) {
	kept := make([]map[string]any, 0, len(objects))
	for _, obj := range objects {
		env, _ := obj["json_data"].(map[string]any)
		out, err := expr.Run(e.filter, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter: %w", err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression must return a boolean, got %T", out)
		}
		if keep {
			kept = append(kept, obj)
		}
	}
	return kept, nil
}

// stringValue renders a json_data scalar the way it participates in string
// transformations. JSON numbers arrive as float64.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
