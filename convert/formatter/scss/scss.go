/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/token"
)

// Formatter outputs one `$name: value;` line per declaration.
type Formatter struct{}

// New creates a new SCSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts declarations to SCSS variables.
func (f *Formatter) Format(decls []token.Declaration, opts formatter.Options) ([]byte, error) {
	decls = formatter.ApplyValueCase(decls, opts.ValueCase)

	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		lines = append(lines, d.String())
	}

	header := formatter.FormatHeader(opts.Header, formatter.SCSSComments)
	return append([]byte(header), formatter.JoinLines(lines)...), nil
}
