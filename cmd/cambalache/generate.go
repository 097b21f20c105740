package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c05m4r/cambalache/internal/config"
	"github.com/c05m4r/cambalache/internal/engine"
)

var (
	includeFields []string
	ignoreFields  []string
	prefixMode    bool
	suffixMode    bool
	bothMode      bool
	genField      string
	filterExpr    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <template.json> <wordlist.txt> <output.json>",
	Short: "Expand a JSON template against a word list",
	Long: `Load a template (a JSON array whose first object carries a json_data
mapping), combine it with a newline-delimited word list, and write the derived
objects to the output file as an indented JSON array.

Modes:
  (default)       Replace every target field with the word, one object per word
  --prefix        One object per (word, field) with the word prepended
  --suffix        One object per (word, field) with the word appended
  --both          Two objects per (word, field): prefixed and suffixed
  --gen <field>   Sequential values <original>1, <original>2, ... for one field;
                  the wordlist argument is ignored in this mode

Field selection:
  --include user,password   Only modify the named json_data fields
  --ignore id               Modify everything except the named fields

Filtering:
  --filter 'user != ""'     Keep only generated objects whose json_data
                            satisfies the expression`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGenerateAction(args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceVarP(&includeFields, "include", "i", nil, "json_data fields to modify exclusively (comma-separated)")
	generateCmd.Flags().StringSliceVarP(&ignoreFields, "ignore", "x", nil, "json_data fields to leave untouched (comma-separated)")
	generateCmd.Flags().BoolVar(&prefixMode, "prefix", false, "generation mode: word as prefix")
	generateCmd.Flags().BoolVar(&suffixMode, "suffix", false, "generation mode: word as suffix")
	generateCmd.Flags().BoolVar(&bothMode, "both", false, "generation mode: prefixed AND suffixed objects")
	generateCmd.Flags().StringVar(&genField, "gen", "", "generator mode: sequential values for the named field")
	generateCmd.Flags().StringVar(&filterExpr, "filter", "", "expression to filter generated objects (e.g. \"user != ''\")")
}

// runGenerateAction implements the core logic for the generate command
func runGenerateAction(templatePath, wordlistPath, outputPath string) error {
	cfg := &config.Config{
		TemplatePath:  templatePath,
		WordlistPath:  wordlistPath,
		OutputPath:    outputPath,
		IncludeFields: includeFields,
		IgnoreFields:  ignoreFields,
		Prefix:        prefixMode,
		Suffix:        suffixMode,
		Both:          bothMode,
		GenField:      genField,
		Filter:        filterExpr,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info("starting run", "mode", cfg.ModeDescription(), "template", templatePath)

	count, err := engine.New(cfg).Process()
	if err != nil {
		return err
	}

	slog.Info("run complete", "objects", count, "output", outputPath)
	return nil
}
