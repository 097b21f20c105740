package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/c05m4r/cambalache/internal/output"
)

// CreateOptions holds options for the create command.
type CreateOptions struct {
	output        string
	fields        []string
	force         bool
	noInteractive bool
}

func newCreateCmd() *cobra.Command {
	opts := &CreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a starter template file",
		Long: `Generate a starter template - a JSON array with one seed object whose
json_data mapping holds the transformable fields.

Examples:
  # Interactive prompts for path and fields
  cambalache create

  # Non-interactive
  cambalache create --output template.json --fields user,password --no-interactive`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCreateAction(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "template path (default: template.json)")
	cmd.Flags().StringSliceVarP(&opts.fields, "fields", "f", nil, "json_data field names (comma-separated)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&opts.noInteractive, "no-interactive", false, "never prompt, rely on flags and defaults")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

// runCreateAction implements the core logic for the create command
func runCreateAction(opts *CreateOptions) error {
	if !opts.noInteractive {
		if opts.output == "" {
			err := huh.NewInput().
				Title("Template path").
				Placeholder("template.json").
				Value(&opts.output).
				Run()
			if err != nil {
				return err
			}
		}

		if len(opts.fields) == 0 {
			var raw string
			err := huh.NewInput().
				Title("Field names (comma-separated)").
				Placeholder("user,password").
				Value(&raw).
				Run()
			if err != nil {
				return err
			}
			opts.fields = strings.Split(raw, ",")
		}
	}

	if opts.output == "" {
		opts.output = "template.json"
	}

	jsonData := make(map[string]any)
	for _, name := range opts.fields {
		name = strings.TrimSpace(name)
		if name != "" {
			jsonData[name] = "changeme"
		}
	}
	if len(jsonData) == 0 {
		jsonData["user"] = "changeme"
		jsonData["password"] = "changeme"
	}

	if _, err := os.Stat(opts.output); err == nil && !opts.force {
		if opts.noInteractive {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.output)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("%s exists. Overwrite?", opts.output)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted, %s left untouched", opts.output)
		}
	}

	doc := []map[string]any{{"json_data": jsonData}}
	if err := output.NewWriter().WriteFile(doc, opts.output); err != nil {
		return err
	}

	slog.Info("template created", "path", opts.output, "fields", len(jsonData))
	return nil
}
