/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert turns token trees into variable files.
package convert

import (
	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/flatten"
	"bennypowers.dev/tokenvars/token"
)

// Options configures conversion.
type Options struct {
	// Format specifies the output format (default FormatSCSS).
	Format Format

	// Prefix namespaces every variable name (e.g., "ds" gives "$ds-color-primary").
	Prefix string

	// Header is emitted as a leading comment.
	Header string

	// ValueCase controls lowercasing of values (default preserve).
	ValueCase formatter.ValueCase

	// Flatten configures name derivation.
	Flatten flatten.Options
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format:    FormatSCSS,
		ValueCase: formatter.CasePreserve,
	}
}

// RootPrefix returns the path prefix passed to the flattener for a name prefix.
func RootPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + "-"
}

// Declarations flattens tree into declarations using opts.
func Declarations(tree *token.Group, opts Options) []token.Declaration {
	return flatten.New(opts.Flatten).Flatten(tree, RootPrefix(opts.Prefix))
}
