/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/convert/formatter/css"
	"bennypowers.dev/tokenvars/convert/formatter/flatjson"
	"bennypowers.dev/tokenvars/convert/formatter/less"
	"bennypowers.dev/tokenvars/convert/formatter/scss"
	"bennypowers.dev/tokenvars/token"
)

// Format represents an output format for declarations.
type Format string

const (
	// FormatSCSS outputs SCSS variables (default).
	FormatSCSS Format = "scss"

	// FormatLess outputs Less variables.
	FormatLess Format = "less"

	// FormatCSS outputs CSS custom properties with :root selector.
	FormatCSS Format = "css"

	// FormatFlatJSON outputs flat key-value JSON.
	FormatFlatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatSCSS),
		string(FormatLess),
		string(FormatCSS),
		string(FormatFlatJSON),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "scss", "sass", "":
		return FormatSCSS, nil
	case "less":
		return FormatLess, nil
	case "css":
		return FormatCSS, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatLess:
		return ".less"
	case FormatCSS:
		return ".css"
	case FormatFlatJSON:
		return ".json"
	default:
		return ".scss"
	}
}

// NewFormatter returns the formatter for format.
func NewFormatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatSCSS, "":
		return scss.New(), nil
	case FormatLess:
		return less.New(), nil
	case FormatCSS:
		return css.New(), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatDeclarations renders declarations in the specified output format.
func FormatDeclarations(decls []token.Declaration, format Format, opts Options) ([]byte, error) {
	f, err := NewFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(decls, formatter.Options{
		Header:    opts.Header,
		ValueCase: opts.ValueCase,
	})
}
