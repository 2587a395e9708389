/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides design token document parsing.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokenvars/fs"
	"bennypowers.dev/tokenvars/token"
)

// Syntax selects the input syntax of a token document.
type Syntax int

const (
	// SyntaxAuto detects JSON or YAML from the content.
	SyntaxAuto Syntax = iota

	// SyntaxJSON parses JSON. Comments and trailing commas are tolerated.
	SyntaxJSON

	// SyntaxYAML parses YAML.
	SyntaxYAML
)

// Options configures document parsing.
type Options struct {
	// Syntax overrides content detection.
	Syntax Syntax
}

// ParseError reports a document that is not valid JSON/YAML or whose root is not an object.
type ParseError struct {
	// Path is the file being parsed, empty for in-memory data.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parse error: " + e.Err.Error()
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser parses design token documents into ordered token trees.
type Parser interface {
	// Parse parses document data.
	Parse(data []byte, opts Options) (*token.Group, error)

	// ParseFile reads and parses a document from the filesystem.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Group, error)
}

// SyntaxForPath guesses the syntax from a file extension.
func SyntaxForPath(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	case ".json", ".jsonc":
		return SyntaxJSON
	default:
		return SyntaxAuto
	}
}
