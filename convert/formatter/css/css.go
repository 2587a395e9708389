/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/token"
)

// Selector is the rule wrapping the custom properties.
const Selector = ":root"

// Formatter outputs CSS custom properties inside a :root rule.
type Formatter struct{}

// New creates a CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts declarations to CSS custom properties.
// No declarations produce no output.
func (f *Formatter) Format(decls []token.Declaration, opts formatter.Options) ([]byte, error) {
	if len(decls) == 0 {
		return nil, nil
	}
	decls = formatter.ApplyValueCase(decls, opts.ValueCase)

	lines := make([]string, 0, len(decls)+2)
	lines = append(lines, Selector+" {")
	for _, d := range decls {
		lines = append(lines, "  --"+d.Name+": "+d.Value+";")
	}
	lines = append(lines, "}")

	header := formatter.FormatHeader(opts.Header, formatter.CStyleComments)
	return append([]byte(header), formatter.JoinLines(lines)...), nil
}
