/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenvars/internal/mapfs"
	"bennypowers.dev/tokenvars/parser"
	"bennypowers.dev/tokenvars/token"
)

func keys(g *token.Group) []string {
	out := make([]string, 0, g.Len())
	for _, e := range g.Entries {
		out = append(out, e.Key)
	}
	return out
}

func TestDocumentParser_PreservesKeyOrder(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`{
		"zeta": {"value": 1},
		"alpha": {"value": 2},
		"mid": {"b": {"value": 3}, "a": {"value": 4}}
	}`), parser.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys(tree))

	mid, ok := tree.Get("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, keys(mid.(*token.Group)))
}

func TestDocumentParser_ScalarKinds(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`{"s": "#FF0000", "n": 8, "f": 1.5, "b": true, "z": null, "l": ["a", 2]}`), parser.Options{})
	require.NoError(t, err)

	tests := []struct {
		key  string
		want token.Node
	}{
		{"s", token.Scalar{Text: "#FF0000", Kind: token.KindString}},
		{"n", token.Scalar{Text: "8", Kind: token.KindNumber}},
		{"f", token.Scalar{Text: "1.5", Kind: token.KindNumber}},
		{"b", token.Scalar{Text: "true", Kind: token.KindBool}},
		{"z", token.Scalar{Text: "null", Kind: token.KindNull}},
		{"l", token.List{Items: []token.Node{
			token.Scalar{Text: "a", Kind: token.KindString},
			token.Scalar{Text: "2", Kind: token.KindNumber},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := tree.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentParser_QuotedNumberStaysString(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`{"value": "8"}`), parser.Options{})
	require.NoError(t, err)

	n, ok := tree.Value()
	require.True(t, ok)
	assert.Equal(t, token.Scalar{Text: "8", Kind: token.KindString}, n)
}

func TestDocumentParser_JSONEscapes(t *testing.T) {
	longKey := strings.Repeat("k", 1100)

	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{"escaped solidus", `{"s": {"value": "a\/b"}}`, "s", "a/b"},
		{"surrogate pair", `{"emoji": {"value": "\ud83d\ude00"}}`, "emoji", "\U0001F600"},
		{"long key", `{"` + longKey + `": {"value": "x"}}`, longKey, "x"},
	}

	p := parser.NewDocumentParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := p.Parse([]byte(tt.input), parser.Options{Syntax: parser.SyntaxJSON})
			require.NoError(t, err)

			n, ok := tree.Get(tt.key)
			require.True(t, ok)
			v, ok := n.(*token.Group).Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, v.(token.Scalar).Text)
		})
	}
}

func TestDocumentParser_NumberTextKept(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`{"a": 1.50, "b": 1e2, "c": -0.0}`), parser.Options{})
	require.NoError(t, err)

	for key, want := range map[string]string{"a": "1.50", "b": "1e2", "c": "-0.0"} {
		n, ok := tree.Get(key)
		require.True(t, ok)
		assert.Equal(t, token.Scalar{Text: want, Kind: token.KindNumber}, n)
	}
}

func TestDocumentParser_Comments(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`// brand palette
{
	/* primary */
	"primary": {"value": "#000"},
}`), parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"primary"}, keys(tree))
}

func TestDocumentParser_DuplicateKeys(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`{"a": {"value": 1}, "b": {"value": 2}, "a": {"value": 3}}`), parser.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, keys(tree))
	a, _ := tree.Get("a")
	v, _ := a.(*token.Group).Value()
	assert.Equal(t, "3", v.(token.Scalar).Text)
}

func TestDocumentParser_YAML(t *testing.T) {
	p := parser.NewDocumentParser()
	tree, err := p.Parse([]byte(`
spacing:
  large:
    value: 32
  small:
    value: 4
`), parser.Options{})
	require.NoError(t, err)

	spacing, ok := tree.Get("spacing")
	require.True(t, ok)
	assert.Equal(t, []string{"large", "small"}, keys(spacing.(*token.Group)))
}

func TestDocumentParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  parser.Options
		is    error
	}{
		{name: "malformed JSON", input: `{"a": `},
		{name: "array root", input: `[1, 2]`, is: parser.ErrNotObject},
		{name: "scalar root", input: `42`, is: parser.ErrNotObject},
		{name: "empty", input: ``, is: parser.ErrEmptyDocument},
		{name: "forced JSON on YAML", input: "a: 1", opts: parser.Options{Syntax: parser.SyntaxJSON}},
	}

	p := parser.NewDocumentParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.input), tt.opts)
			require.Error(t, err)

			var perr *parser.ParseError
			assert.True(t, errors.As(err, &perr), "expected ParseError, got %T", err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDocumentParser_ParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/colors.json", `{"color": {"primary": {"value": "#FF0000"}}}`, 0644)
	mfs.AddFile("/tokens/broken.json", `{"color": `, 0644)
	mfs.AddFile("/tokens/sizes.yaml", "size:\n  base:\n    value: 8\n", 0644)

	p := parser.NewDocumentParser()

	t.Run("json", func(t *testing.T) {
		tree, err := p.ParseFile(mfs, "/tokens/colors.json", parser.Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, tree.CountTokens())
	})

	t.Run("yaml by extension", func(t *testing.T) {
		tree, err := p.ParseFile(mfs, "/tokens/sizes.yaml", parser.Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, tree.CountTokens())
	})

	t.Run("parse error carries path", func(t *testing.T) {
		_, err := p.ParseFile(mfs, "/tokens/broken.json", parser.Options{})
		var perr *parser.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "/tokens/broken.json", perr.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := p.ParseFile(mfs, "/tokens/missing.json", parser.Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)

		var perr *parser.ParseError
		assert.False(t, errors.As(err, &perr))
	})
}

func TestSyntaxForPath(t *testing.T) {
	assert.Equal(t, parser.SyntaxYAML, parser.SyntaxForPath("a/tokens.YML"))
	assert.Equal(t, parser.SyntaxJSON, parser.SyntaxForPath("tokens.json"))
	assert.Equal(t, parser.SyntaxAuto, parser.SyntaxForPath("tokens"))
}
