package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c05m4r/cambalache/internal/config"
	"github.com/c05m4r/cambalache/internal/engine"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <profile.yaml>",
	Short: "Execute an expansion run described by a YAML profile",
	Long: `Load a run profile and execute it. A profile bundles the template,
wordlist and output paths together with the mode and field selection, so a
run can be repeated without retyping flags:

  version: "1.0.0"
  template: ./template.json
  wordlist: ./words.txt
  output: ./out.json
  mode: both
  ignore: [id]

Relative paths are resolved against the profile's directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runProfileAction(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runProfileAction implements the core logic for the run command
func runProfileAction(profilePath string) error {
	slog.Info("loading profile", "path", profilePath)

	cfg, err := config.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	slog.Info("profile loaded", "mode", cfg.ModeDescription(), "template", cfg.TemplatePath)

	count, err := engine.New(cfg).Process()
	if err != nil {
		return err
	}

	slog.Info("run complete", "objects", count, "output", cfg.OutputPath)
	return nil
}
