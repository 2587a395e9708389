/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenvars/token"
)

// parseYAML decodes a YAML document into an ordered tree using yaml.v3 nodes.
func parseYAML(src []byte) (*token.Group, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}
	return buildGroup(root), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// buildGroup converts a mapping node into a token group, in document order.
func buildGroup(n *yaml.Node) *token.Group {
	g := token.NewGroup()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i]).Value
		g.Set(key, buildNode(n.Content[i+1]))
	}
	return g
}

func buildNode(n *yaml.Node) token.Node {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return buildGroup(n)
	case yaml.SequenceNode:
		items := make([]token.Node, 0, len(n.Content))
		for _, item := range n.Content {
			items = append(items, buildNode(item))
		}
		return token.List{Items: items}
	default:
		return buildScalar(n)
	}
}

func buildScalar(n *yaml.Node) token.Scalar {
	switch n.ShortTag() {
	case "!!int", "!!float":
		return token.Scalar{Text: n.Value, Kind: token.KindNumber}
	case "!!bool":
		return token.Scalar{Text: n.Value, Kind: token.KindBool}
	case "!!null":
		return token.Scalar{Text: "null", Kind: token.KindNull}
	default:
		return token.Scalar{Text: n.Value, Kind: token.KindString}
	}
}
