/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenvars.
package config

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokenvars/convert"
	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/flatten"
)

// Documented defaults.
const (
	DefaultInput     = "tokens.json"
	DefaultOutDir    = "dist"
	DefaultOutBase   = "_variables"
	DefaultFormat    = string(convert.FormatSCSS)
	DefaultValueCase = string(formatter.CasePreserve)
)

// Config represents the tokenvars configuration.
type Config struct {
	// Input is the token document path, or a glob matching several documents.
	Input string `yaml:"input" json:"input"`

	// OutDir is the directory the output file is written to. Created if missing.
	OutDir string `yaml:"outDir" json:"outDir"`

	// OutFile is the output file name within OutDir. When empty it is
	// DefaultOutBase plus the extension of Format.
	OutFile string `yaml:"outFile" json:"outFile"`

	// Format is the output format: scss, less, css or json.
	Format string `yaml:"format" json:"format"`

	// Prefix namespaces every variable name.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Header is written as a comment at the top of the output.
	Header string `yaml:"header" json:"header"`

	// ValueCase controls lowercasing of values: preserve, colors or all.
	ValueCase string `yaml:"valueCase" json:"valueCase"`

	// PreserveCase keeps the original casing of variable names.
	PreserveCase bool `yaml:"preserveCase" json:"preserveCase"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:     DefaultInput,
		OutDir:    DefaultOutDir,
		Format:    DefaultFormat,
		ValueCase: DefaultValueCase,
	}
}

// applyDefaults fills empty fields with defaults.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.OutDir == "" {
		c.OutDir = d.OutDir
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.ValueCase == "" {
		c.ValueCase = d.ValueCase
	}
}

// OutputPath returns the full path of the output file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutDir, c.OutFileName())
}

// OutFileName returns OutFile, or a name derived from the output format.
func (c *Config) OutFileName() string {
	if c.OutFile != "" {
		return c.OutFile
	}
	format, err := convert.ParseFormat(c.Format)
	if err != nil {
		format = convert.FormatSCSS
	}
	return DefaultOutBase + format.Extension()
}

// ConvertOptions validates the config and returns conversion options.
func (c *Config) ConvertOptions() (convert.Options, error) {
	format, err := convert.ParseFormat(c.Format)
	if err != nil {
		return convert.Options{}, fmt.Errorf("invalid format in config: %w", err)
	}
	valueCase, err := formatter.ParseValueCase(c.ValueCase)
	if err != nil {
		return convert.Options{}, fmt.Errorf("invalid valueCase in config: %w", err)
	}
	return convert.Options{
		Format:    format,
		Prefix:    c.Prefix,
		Header:    c.Header,
		ValueCase: valueCase,
		Flatten: flatten.Options{
			PreserveCase: c.PreserveCase,
		},
	}, nil
}
