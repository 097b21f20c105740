// Package config holds the run configuration for cambalache and its
// validation rules.
package config

import (
	"fmt"
	"log/slog"

	"github.com/c05m4r/cambalache/internal/transform"
)

// Config describes a single expansion run. It is treated as immutable once
// Validate has returned nil.
type Config struct {
	TemplatePath string
	WordlistPath string
	OutputPath   string

	// IncludeFields restricts the run to the named json_data fields;
	// IgnoreFields excludes them instead. At most one may be set.
	IncludeFields []string
	IgnoreFields  []string

	// Mode flags. At most one may be active; none means uniform replace.
	Prefix   bool
	Suffix   bool
	Both     bool
	GenField string

	// Filter is an optional expression evaluated against each generated
	// object's json_data; objects for which it is false are dropped.
	Filter string
}

// ConfigError indicates an invalid flag or profile combination. Runs abort
// before any template or wordlist I/O when validation fails.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Validate checks the mutual-exclusion rules. Non-fatal oddities are logged
// as warnings and do not fail validation.
func (c *Config) Validate() error {
	active := 0
	for _, set := range []bool{c.Prefix, c.Suffix, c.Both, c.GenField != ""} {
		if set {
			active++
		}
	}
	if active > 1 {
		return &ConfigError{Reason: "--prefix, --suffix, --both and --gen are mutually exclusive"}
	}

	if c.GenField != "" {
		slog.Warn("generator mode synthesizes its own sequence, the wordlist argument will be ignored", "field", c.GenField)
	}

	if len(c.IncludeFields) > 0 && len(c.IgnoreFields) > 0 {
		return &ConfigError{Reason: "--include and --ignore cannot be combined"}
	}

	return nil
}

// IsGenerationMode reports whether per-field expansion applies (any of the
// prefix, suffix, both or generator modes). When false the run performs a
// uniform replace.
func (c *Config) IsGenerationMode() bool {
	return c.Prefix || c.Suffix || c.Both || c.GenField != ""
}

// IsGeneratorMode reports whether the sequential generator drives the run.
func (c *Config) IsGeneratorMode() bool {
	return c.GenField != ""
}

// Strategy selects the transformation strategy for this configuration. The
// base value is only consulted in generator mode, where it seeds the
// sequential values.
func (c *Config) Strategy(base string) transform.Strategy {
	switch {
	case c.GenField != "":
		return transform.NewGenerator(base)
	case c.Prefix:
		return transform.Prefix{}
	case c.Suffix:
		return transform.Suffix{}
	case c.Both:
		return transform.Both{}
	default:
		return transform.Replace{}
	}
}

// ModeDescription returns the human-readable label for the active mode.
func (c *Config) ModeDescription() string {
	switch {
	case c.GenField != "":
		return fmt.Sprintf("sequential generator for field '%s'", c.GenField)
	case c.Prefix:
		return "prefix"
	case c.Suffix:
		return "suffix"
	case c.Both:
		return "prefix AND suffix (separate objects)"
	default:
		return "replace"
	}
}
