/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package flatten_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenvars/flatten"
	"bennypowers.dev/tokenvars/parser"
	"bennypowers.dev/tokenvars/token"
)

func parse(t *testing.T, doc string) *token.Group {
	t.Helper()
	tree, err := parser.NewDocumentParser().Parse([]byte(doc), parser.Options{})
	require.NoError(t, err)
	return tree
}

func render(decls []token.Declaration) string {
	lines := make([]string, len(decls))
	for i, d := range decls {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

func TestFlatten_Examples(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "color with type metadata",
			doc:  `{"color": {"primary": {"value": "#FF0000", "type": "color"}}}`,
			want: "$color-primary: #FF0000;",
		},
		{
			name: "number value",
			doc:  `{"spacing": {"base": {"value": 8}}}`,
			want: "$spacing-base: 8;",
		},
		{
			name: "whitespace in key",
			doc:  `{"Border Radius": {"value": "4px"}}`,
			want: "$border-radius: 4px;",
		},
		{
			name: "empty tree",
			doc:  `{}`,
			want: "",
		},
		{
			name: "scalar sibling ignored",
			doc:  `{"font": {"value": "Arial", "weight": "bold"}}`,
			want: "$font: Arial;",
		},
		{
			name: "root value",
			doc:  `{"value": "x"}`,
			want: "$value: x;",
		},
		{
			name: "special characters",
			doc:  `{"Font/Size": {"H1 (large)": {"value": "2rem"}}}`,
			want: "$font-size-h1-large-: 2rem;",
		},
		{
			name: "leading hyphen stripped",
			doc:  `{"-x": {"value": 1}}`,
			want: "$x: 1;",
		},
		{
			name: "value that is a group is a namespace",
			doc:  `{"shadow": {"value": {"x": {"value": "1px"}}}}`,
			want: "$shadow-value-x: 1px;",
		},
		{
			name: "token with nested tokens",
			doc:  `{"a": {"value": 1, "b": {"value": 2}}}`,
			want: "$a: 1;\n$a-b: 2;",
		},
		{
			name: "array under value",
			doc:  `{"font": {"stack": {"value": ["Helvetica", "sans-serif"]}}}`,
			want: "$font-stack: Helvetica, sans-serif;",
		},
		{
			name: "array under metadata key skipped",
			doc:  `{"font": {"value": "Arial", "aliases": ["a", "b"]}}`,
			want: "$font: Arial;",
		},
		{
			name: "tab and multiple spaces",
			doc:  "{\"Line \\t  Height\": {\"value\": 1.5}}",
			want: "$line-height: 1.5;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(flatten.Flatten(parse(t, tt.doc), ""))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatten_DocumentOrder(t *testing.T) {
	doc := `{
		"z": {"value": 1},
		"group": {
			"b": {"value": 2},
			"a": {"inner": {"value": 3}}
		},
		"a": {"value": 4}
	}`
	decls := flatten.Flatten(parse(t, doc), "")

	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"z", "group-b", "group-a-inner", "a"}, names)
}

func TestFlatten_DuplicateNamesKept(t *testing.T) {
	doc := `{"Color Primary": {"value": "red"}, "color": {"primary": {"value": "blue"}}}`
	got := render(flatten.Flatten(parse(t, doc), ""))
	assert.Equal(t, "$color-primary: red;\n$color-primary: blue;", got)
}

func TestFlatten_Prefix(t *testing.T) {
	doc := `{"color": {"primary": {"value": "#000"}}}`
	got := render(flatten.Flatten(parse(t, doc), "DS "))
	assert.Equal(t, "$ds-color-primary: #000;", got)
}

func TestFlatten_ValuesVerbatim(t *testing.T) {
	doc := `{"font": {"family": {"value": "Open Sans"}}, "color": {"value": "#ABCDEF"}}`
	decls := flatten.Flatten(parse(t, doc), "")
	require.Len(t, decls, 2)
	assert.Equal(t, "Open Sans", decls[0].Value)
	assert.Equal(t, "#ABCDEF", decls[1].Value)
}

func TestFlatten_Options(t *testing.T) {
	doc := `{"Color": {"Primary": {"value": "#000"}}}`

	t.Run("preserve case", func(t *testing.T) {
		f := flatten.New(flatten.Options{PreserveCase: true})
		decls := f.Flatten(parse(t, doc), "")
		require.Len(t, decls, 1)
		assert.Equal(t, "Color-Primary", decls[0].Name)
	})

	t.Run("custom sanitizer", func(t *testing.T) {
		f := flatten.New(flatten.Options{Sanitize: func(s string) string {
			return strings.ReplaceAll(flatten.Sanitize(s), "-", "_")
		}})
		decls := f.Flatten(parse(t, doc), "")
		require.Len(t, decls, 1)
		assert.Equal(t, "color_primary", decls[0].Name)
	})
}

func TestFlatten_NilTree(t *testing.T) {
	assert.Empty(t, flatten.Flatten(nil, ""))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"color-primary", "color-primary"},
		{"color--primary", "color-primary"},
		{"-color", "color"},
		{"--color", "color"},
		{"color.primary", "color-primary"},
		{"a_b", "a-b"},
		{"café", "caf-"},
		{"Foo-Bar", "Foo-Bar"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, flatten.Sanitize(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "border-radius", flatten.Normalize("border   radius"))
	assert.Equal(t, "a-b-c", flatten.Normalize("a\tb c"))
	assert.Equal(t, "-a-", flatten.Normalize(" a "))
}

var validName = regexp.MustCompile(`^[a-z0-9]([a-z0-9]|-[a-z0-9]|-$)*$|^$`)

// randomTree builds a tree with a mix of tokens, namespaces, metadata and awkward keys.
func randomTree(r *rand.Rand, depth int) *token.Group {
	keyParts := []string{"Color", "space", "x y", "Ünï", "a.b", "-lead", "value", "type", "9", "z__z"}
	g := token.NewGroup()
	n := r.Intn(5)
	for i := 0; i < n; i++ {
		key := keyParts[r.Intn(len(keyParts))] + fmt.Sprint(i)
		switch {
		case depth > 0 && r.Intn(3) == 0:
			g.Set(key, randomTree(r, depth-1))
		case r.Intn(4) == 0:
			g.Set(token.ValueKey, token.Scalar{Text: fmt.Sprint(r.Intn(100)), Kind: token.KindNumber})
		default:
			g.Set(key, token.Scalar{Text: "meta"})
		}
	}
	return g
}

func TestFlatten_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		tree := randomTree(r, 4)
		decls := flatten.Flatten(tree, "")

		require.Equal(t, tree.CountTokens(), len(decls), "declaration count must equal token count")
		for _, d := range decls {
			assert.Equal(t, d.Name, flatten.Sanitize(d.Name), "sanitize must be idempotent")
			assert.Regexp(t, validName, d.Name)
		}
	}
}

func TestFlatten_Concurrent(t *testing.T) {
	tree := parse(t, `{"a": {"b": {"value": 1}, "c": {"value": 2}}}`)
	want := render(flatten.Flatten(tree, ""))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, render(flatten.Flatten(tree, "")))
		}()
	}
	wg.Wait()
}
