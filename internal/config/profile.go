package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
)

// Profile is the YAML representation of a run, an alternative to spelling
// everything out as command-line flags:
//
//	version: "1.0.0"
//	template: ./template.json
//	wordlist: ./words.txt
//	output: ./out.json
//	mode: prefix          # replace (default), prefix, suffix, both
//	include: [user]
//	filter: 'user != ""'
type Profile struct {
	Version  string   `yaml:"version"`
	Template string   `yaml:"template"`
	Wordlist string   `yaml:"wordlist"`
	Output   string   `yaml:"output"`
	Mode     string   `yaml:"mode"`
	GenField string   `yaml:"gen_field"`
	Include  []string `yaml:"include"`
	Ignore   []string `yaml:"ignore"`
	Filter   string   `yaml:"filter"`
}

// LoadProfile reads and validates a run profile. Relative paths inside the
// profile are resolved against the profile's own directory.
func LoadProfile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("cannot open profile %s: %v", path, err)}
	}
	defer f.Close()

	cfg, err := LoadProfileFromReader(f)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	cfg.TemplatePath = resolvePath(dir, cfg.TemplatePath)
	cfg.WordlistPath = resolvePath(dir, cfg.WordlistPath)
	cfg.OutputPath = resolvePath(dir, cfg.OutputPath)
	return cfg, nil
}

// LoadProfileFromReader parses a profile from r. Useful for testing with
// in-memory YAML data.
func LoadProfileFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("cannot read profile: %v", err)}
	}

	var profile Profile
	// Strict parsing - reject unknown fields
	if err := yaml.UnmarshalWithOptions(data, &profile, yaml.Strict()); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid profile YAML: %v", err)}
	}

	return profile.ToConfig()
}

// ToConfig converts the YAML document into a validated Config.
func (p *Profile) ToConfig() (*Config, error) {
	if p.Version == "" {
		return nil, &ConfigError{Reason: "profile version is required"}
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("profile version %q is not a semantic version", p.Version)}
	}

	cfg := &Config{
		TemplatePath:  p.Template,
		WordlistPath:  p.Wordlist,
		OutputPath:    p.Output,
		IncludeFields: p.Include,
		IgnoreFields:  p.Ignore,
		GenField:      p.GenField,
		Filter:        p.Filter,
	}

	switch p.Mode {
	case "", "replace":
	case "prefix":
		cfg.Prefix = true
	case "suffix":
		cfg.Suffix = true
	case "both":
		cfg.Both = true
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown mode %q (want replace, prefix, suffix or both)", p.Mode)}
	}

	if cfg.TemplatePath == "" || cfg.OutputPath == "" {
		return nil, &ConfigError{Reason: "profile must set template and output paths"}
	}
	if cfg.WordlistPath == "" && !cfg.IsGeneratorMode() {
		return nil, &ConfigError{Reason: "profile must set a wordlist path unless gen_field is used"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
