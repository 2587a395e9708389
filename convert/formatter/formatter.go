/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for declaration formatters.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenvars/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders declarations in the target syntax.
	Format(decls []token.Declaration, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Header is emitted as a leading comment block, if the format supports comments.
	Header string

	// ValueCase controls lowercasing of values.
	ValueCase ValueCase
}

// ValueCase selects how declaration values are cased.
type ValueCase string

const (
	// CasePreserve emits values verbatim.
	CasePreserve ValueCase = "preserve"

	// CaseColors lowercases hex color values only.
	CaseColors ValueCase = "colors"

	// CaseAll lowercases the whole output, names and values alike.
	// Arbitrary string values are lowercased too.
	CaseAll ValueCase = "all"
)

// ValidValueCases returns all valid value case strings.
func ValidValueCases() []string {
	return []string{string(CasePreserve), string(CaseColors), string(CaseAll)}
}

// ParseValueCase converts a string to a ValueCase.
func ParseValueCase(s string) (ValueCase, error) {
	switch strings.ToLower(s) {
	case "", "preserve", "none":
		return CasePreserve, nil
	case "colors", "colours", "hex":
		return CaseColors, nil
	case "all", "legacy":
		return CaseAll, nil
	default:
		return "", fmt.Errorf("unknown value case: %s (valid: %s)", s, strings.Join(ValidValueCases(), ", "))
	}
}

var lower = cases.Lower(language.Und)

// ApplyValueCase returns a copy of decls with the value case mode applied.
func ApplyValueCase(decls []token.Declaration, mode ValueCase) []token.Declaration {
	if mode == "" || mode == CasePreserve {
		return decls
	}
	out := make([]token.Declaration, len(decls))
	for i, d := range decls {
		switch mode {
		case CaseAll:
			d.Name = lower.String(d.Name)
			d.Value = lower.String(d.Value)
		case CaseColors:
			if IsHexColor(d.Value) {
				d.Value = strings.ToLower(d.Value)
			}
		}
		out[i] = d
	}
	return out
}

// IsHexColor reports whether s is a #rgb, #rgba, #rrggbb or #rrggbbaa color.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	rgb, alpha := s, ""
	switch len(s) {
	case 4, 7:
	case 5, 9:
		rgb, alpha = s[:len(s)*3/4], s[len(s)*3/4:]
	default:
		return false
	}
	if _, err := colorful.Hex(rgb); err != nil {
		return false
	}
	if alpha != "" {
		if _, err := strconv.ParseUint(alpha, 16, 8); err != nil {
			return false
		}
	}
	return true
}

// CommentStyle describes how a format writes comments.
type CommentStyle struct {
	// LinePrefix starts each line of a line-comment block (e.g., "// ").
	LinePrefix string

	// BlockStart, BlockLinePrefix and BlockEnd describe a block comment.
	BlockStart      string
	BlockLinePrefix string
	BlockEnd        string
}

var (
	// SCSSComments uses // line comments.
	SCSSComments = CommentStyle{LinePrefix: "// "}

	// CStyleComments uses /* */ block comments.
	CStyleComments = CommentStyle{BlockStart: "/*", BlockLinePrefix: " * ", BlockEnd: " */"}
)

// FormatHeader renders header text as a comment followed by a blank line.
// Returns "" for an empty header.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\r\n")
	if strings.TrimSpace(header) == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(header, "\r\n", "\n"), "\n")

	var sb strings.Builder
	if style.LinePrefix != "" {
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(style.LinePrefix+line, " "))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		return sb.String()
	}

	if style.BlockEnd != "" {
		closer := strings.TrimSpace(style.BlockEnd)
		for i, line := range lines {
			lines[i] = strings.ReplaceAll(line, closer, closer[:1]+" "+closer[1:])
		}
	}

	if len(lines) == 1 {
		sb.WriteString(strings.TrimSpace(style.BlockStart) + " " + lines[0] + " " + strings.TrimSpace(style.BlockEnd) + "\n\n")
		return sb.String()
	}
	sb.WriteString(style.BlockStart + "\n")
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(style.BlockLinePrefix+line, " "))
		sb.WriteString("\n")
	}
	sb.WriteString(style.BlockEnd + "\n\n")
	return sb.String()
}

// JoinLines joins rendered lines with a single newline and no trailing newline.
func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}
