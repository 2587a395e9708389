/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenvars.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	generatecmd "bennypowers.dev/tokenvars/cmd/generate"
	"bennypowers.dev/tokenvars/config"
	"bennypowers.dev/tokenvars/convert"
	"bennypowers.dev/tokenvars/flatten"
	"bennypowers.dev/tokenvars/generate"
	"bennypowers.dev/tokenvars/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the variables a token document produces",
	Long:  `List every variable derived from a design tokens document, in output order, without writing anything.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP(config.KeyInput, "i", config.DefaultInput, "Token document path or glob")
	Cmd.Flags().String(config.KeyPrefix, "", "Prefix for every variable name")
	Cmd.Flags().Bool(config.KeyPreserveCase, false, "Keep the original casing of variable names")
	Cmd.Flags().String("format", "table", "Output format: table, names, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := generatecmd.ResolveConfig(args)
	if err != nil {
		return err
	}

	result, err := generate.Run(cmd.Context(), generate.Options{
		Input: cfg.Input,
		Convert: convert.Options{
			Format:  convert.FormatSCSS,
			Prefix:  cfg.Prefix,
			Flatten: flatten.Options{PreserveCase: cfg.PreserveCase},
		},
		DryRun: true,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rows := ComputeRows(result.Declarations)
	switch format {
	case "json":
		return JSON(out, rows)
	case "names":
		return Names(out, rows)
	case "table", "":
		return Table(out, rows, isTerminal(out))
	default:
		return fmt.Errorf("unknown list format: %s (valid: table, names, json)", format)
	}
}

// Row holds display values for a single declaration.
type Row struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Kind    string `json:"kind"`
	IsColor bool   `json:"-"`
}

// ComputeRows transforms declarations into display rows.
func ComputeRows(decls []token.Declaration) []Row {
	rows := make([]Row, 0, len(decls))
	for _, d := range decls {
		row := Row{
			Name:  "$" + d.Name,
			Value: d.Value,
			Kind:  d.Kind.String(),
		}
		if d.Kind == token.KindString {
			if _, err := csscolorparser.Parse(d.Value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table. Colors get a swatch when swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	nameW := 4
	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
	}
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s%s\n", nameW, r.Name, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Names renders just the variable names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
