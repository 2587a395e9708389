/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokenvars.
package generate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenvars/config"
	"bennypowers.dev/tokenvars/convert"
	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/fs"
	"bennypowers.dev/tokenvars/generate"
	"bennypowers.dev/tokenvars/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Write a variables file from a design tokens document",
	Long: `Flatten a nested design tokens document into style-sheet variables.

Every object with a "value" key becomes one variable, named after the path of
keys leading to it:

  {"color": {"primary": {"value": "#FF0000"}}}  →  $color-primary: #FF0000;

Output Formats:
  scss   SCSS variables (default)
  less   Less variables
  css    CSS custom properties under :root
  json   Flat key-value JSON

Examples:
  # Read tokens.json, write dist/_variables.scss
  tokenvars generate

  # Combine several documents
  tokenvars generate 'tokens/**/*.json'

  # Namespaced CSS custom properties
  tokenvars generate --format css --prefix ds -o build -f tokens.css

  # Print instead of writing
  tokenvars generate --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: Run,
}

func init() {
	AddFlags(Cmd)
}

// AddFlags registers the generate flags on c.
func AddFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP(config.KeyInput, "i", config.DefaultInput, "Token document path or glob")
	f.StringP(config.KeyOutDir, "o", config.DefaultOutDir, "Output directory (created if missing)")
	f.StringP(config.KeyOutFile, "f", "", "Output file name (default "+config.DefaultOutBase+" plus the format's extension)")
	f.String(config.KeyFormat, config.DefaultFormat, "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	f.String(config.KeyPrefix, "", "Prefix for every variable name")
	f.String(config.KeyHeader, "", "Comment written at the top of the output")
	f.String(config.KeyValueCase, config.DefaultValueCase, "Value lowercasing: "+strings.Join(formatter.ValidValueCases(), ", "))
	f.Bool(config.KeyPreserveCase, false, "Keep the original casing of variable names")
	f.Bool("dry-run", false, "Print the output instead of writing it")
}

// ResolveConfig returns the effective config for a command invocation.
// A positional argument replaces the input.
func ResolveConfig(args []string) (*config.Config, error) {
	cfg, err := config.Resolve(fs.NewOSFileSystem(), ".", viper.GetString("config"), viper.GetViper())
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	return cfg, nil
}

// Run executes the generate command.
func Run(cmd *cobra.Command, args []string) error {
	cfg, err := ResolveConfig(args)
	if err != nil {
		return err
	}
	opts, err := cfg.ConvertOptions()
	if err != nil {
		return err
	}
	dryRun := viper.GetBool("dry-run")

	result, err := generate.Run(cmd.Context(), generate.Options{
		FS:         fs.NewOSFileSystem(),
		Input:      cfg.Input,
		OutputPath: cfg.OutputPath(),
		Convert:    opts,
		DryRun:     dryRun,
	})
	if err != nil {
		return err
	}

	if dryRun {
		_, err := cmd.OutOrStdout().Write(result.Output)
		return err
	}

	logger.Info("wrote %d variables from %s to %s",
		len(result.Declarations), describeFiles(result.Files), result.OutputPath)
	return nil
}

func describeFiles(files []string) string {
	if len(files) == 1 {
		return files[0]
	}
	return fmt.Sprintf("%d files", len(files))
}
