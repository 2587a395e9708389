/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token tree and declaration types.
package token

import "strings"

// ValueKey is the entry key that marks a group as a token.
const ValueKey = "value"

// Node is a node in a token tree: a *Group, a Scalar, or a List.
type Node interface {
	node()
}

// Entry is a single key/node pair within a group.
type Entry struct {
	Key  string
	Node Node
}

// Group is an ordered mapping from string keys to nodes.
// Entries keep the insertion order of the source document.
type Group struct {
	Entries []Entry
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

func (*Group) node() {}

// Set adds an entry, or replaces the node of an existing entry with the same key.
// A replaced entry keeps its original position.
func (g *Group) Set(key string, n Node) {
	for i := range g.Entries {
		if g.Entries[i].Key == key {
			g.Entries[i].Node = n
			return
		}
	}
	g.Entries = append(g.Entries, Entry{Key: key, Node: n})
}

// Get returns the node for key.
func (g *Group) Get(key string) (Node, bool) {
	for _, e := range g.Entries {
		if e.Key == key {
			return e.Node, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (g *Group) Len() int {
	return len(g.Entries)
}

// Value returns the token value of this group, if it has one.
// A group is a token when it holds a non-group entry named "value".
func (g *Group) Value() (Node, bool) {
	n, ok := g.Get(ValueKey)
	if !ok {
		return nil, false
	}
	if _, isGroup := n.(*Group); isGroup {
		return nil, false
	}
	return n, true
}

// IsToken reports whether the group is a token (leaf declaration site).
func (g *Group) IsToken() bool {
	_, ok := g.Value()
	return ok
}

// CountTokens returns the number of token groups at any depth, including g itself.
func (g *Group) CountTokens() int {
	count := 0
	if g.IsToken() {
		count++
	}
	for _, e := range g.Entries {
		if child, ok := e.Node.(*Group); ok {
			count += child.CountTokens()
		}
	}
	return count
}

// Kind classifies a scalar.
type Kind int

const (
	// KindString is a string scalar.
	KindString Kind = iota
	// KindNumber is a numeric scalar.
	KindNumber
	// KindBool is a boolean scalar.
	KindBool
	// KindNull is a null scalar.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "string"
	}
}

// Scalar is a leaf value. Text is the literal text from the source,
// without quotes for strings.
type Scalar struct {
	Text string
	Kind Kind
}

func (Scalar) node() {}

// String returns the scalar text.
func (s Scalar) String() string {
	return s.Text
}

// List is an array value.
type List struct {
	Items []Node
}

func (List) node() {}

// String renders the scalar and list items joined with ", ".
// Groups inside the list have no textual form and are dropped.
func (l List) String() string {
	parts := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if s, ok := Text(item); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Text returns the textual form of a scalar or list node.
func Text(n Node) (string, bool) {
	switch v := n.(type) {
	case Scalar:
		return v.Text, true
	case List:
		return v.String(), true
	default:
		return "", false
	}
}
