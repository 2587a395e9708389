/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatten turns a nested token tree into an ordered list of variable declarations.
//
// Every group that holds a non-group "value" entry yields one declaration, named
// after the path of keys leading to it:
//
//	{"color": {"primary": {"value": "#FF0000", "type": "color"}}}
//
// becomes
//
//	$color-primary: #FF0000;
//
// Declarations appear in document order, depth first. Sibling metadata entries
// such as "type" are ignored. Names that collide are all kept.
package flatten

import (
	"regexp"
	"strings"

	"bennypowers.dev/tokenvars/token"
)

// SanitizeFunc turns a derived path into a variable name.
type SanitizeFunc func(string) string

// Options configures a Flattener.
type Options struct {
	// Sanitize is applied to every derived name. Defaults to Sanitize.
	Sanitize SanitizeFunc

	// PreserveCase disables lowercasing of names.
	PreserveCase bool
}

// Flattener derives declarations from token trees.
// A Flattener holds no mutable state and may be used concurrently.
type Flattener struct {
	opts Options
}

// New creates a Flattener with the given options.
func New(opts Options) *Flattener {
	if opts.Sanitize == nil {
		opts.Sanitize = Sanitize
	}
	return &Flattener{opts: opts}
}

var defaultFlattener = New(Options{})

// Flatten flattens tree with the default options.
func Flatten(tree *token.Group, prefix string) []token.Declaration {
	return defaultFlattener.Flatten(tree, prefix)
}

// Flatten returns one declaration per token in tree.
// prefix is prepended verbatim to every top-level key; callers normally pass ""
// or a namespace ending in "-".
func (f *Flattener) Flatten(tree *token.Group, prefix string) []token.Declaration {
	var result []token.Declaration
	f.walk(tree, prefix, &result)
	return result
}

func (f *Flattener) walk(g *token.Group, prefix string, result *[]token.Declaration) {
	if g == nil {
		return
	}
	for _, e := range g.Entries {
		currentKey := prefix + e.Key

		if child, ok := e.Node.(*token.Group); ok {
			f.walk(child, Normalize(currentKey)+"-", result)
			continue
		}

		if e.Key != token.ValueKey {
			continue
		}

		value, ok := token.Text(e.Node)
		if !ok {
			continue
		}
		*result = append(*result, token.Declaration{
			Name:  f.name(currentKey),
			Value: value,
			Kind:  kindOf(e.Node),
		})
	}
}

// name derives the variable name for a "value" entry at path.
func (f *Flattener) name(path string) string {
	name := strings.TrimSuffix(Normalize(path), "-"+token.ValueKey)
	name = f.opts.Sanitize(name)
	if !f.opts.PreserveCase {
		name = strings.ToLower(name)
	}
	return name
}

func kindOf(n token.Node) token.Kind {
	if s, ok := n.(token.Scalar); ok {
		return s.Kind
	}
	return token.KindString
}

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)
	invalidChar   = regexp.MustCompile(`[^A-Za-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Normalize replaces every run of whitespace with a single hyphen.
func Normalize(s string) string {
	return whitespaceRun.ReplaceAllString(s, "-")
}

// Sanitize makes s a valid variable name: characters outside [A-Za-z0-9-]
// become hyphens, hyphen runs collapse to one, and one leading hyphen is dropped.
// Sanitize is idempotent.
func Sanitize(s string) string {
	s = invalidChar.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSpace(s)
}
