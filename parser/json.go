/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokenvars/fs"
	"bennypowers.dev/tokenvars/token"
)

// ErrNotObject is returned when the document root is not an object.
var ErrNotObject = errors.New("document root must be an object")

// ErrEmptyDocument is returned for documents with no content.
var ErrEmptyDocument = errors.New("document is empty")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DocumentParser parses JSON and YAML token documents.
// Key order of the source document is preserved.
type DocumentParser struct{}

// NewDocumentParser creates a new token document parser.
func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

// Parse parses JSON or YAML token data into a token tree.
func (p *DocumentParser) Parse(data []byte, opts Options) (*token.Group, error) {
	syntax := opts.Syntax
	if syntax == SyntaxAuto {
		syntax = SyntaxYAML
		if isLikelyJSON(data) {
			syntax = SyntaxJSON
		}
	}

	src := bytes.TrimPrefix(data, utf8BOM)
	var (
		tree *token.Group
		err  error
	)
	if syntax == SyntaxJSON {
		tree, err = parseJSON(src)
	} else {
		tree, err = parseYAML(src)
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return tree, nil
}

// ParseFile parses a token file into a token tree.
func (p *DocumentParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Group, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if opts.Syntax == SyntaxAuto {
		opts.Syntax = SyntaxForPath(path)
	}

	tree, err := p.Parse(data, opts)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}

// parseJSON decodes JSON with comments and trailing commas into an ordered tree.
// encoding/json maps lose key order, so the document is read as a token stream.
func parseJSON(src []byte) (*token.Group, error) {
	src = bytes.TrimSpace(jsonc.ToJSON(src))
	if len(src) == 0 {
		return nil, ErrEmptyDocument
	}
	if !json.Valid(src) {
		var discard any
		if err := json.Unmarshal(src, &discard); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}
	return decodeObject(dec)
}

// decodeObject reads object members up to and including the closing brace.
func decodeObject(dec *json.Decoder) (*token.Group, error) {
	g := token.NewGroup()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		n, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		g.Set(key, n)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeArray(dec *json.Decoder) (token.List, error) {
	var items []token.Node
	for dec.More() {
		n, err := decodeValue(dec)
		if err != nil {
			return token.List{}, err
		}
		items = append(items, n)
	}
	if _, err := dec.Token(); err != nil {
		return token.List{}, err
	}
	return token.List{Items: items}, nil
}

func decodeValue(dec *json.Decoder) (token.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return decodeObject(dec)
		}
		if v == '[' {
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return token.Scalar{Text: v, Kind: token.KindString}, nil
	case json.Number:
		// Source text is kept: 1.50 stays 1.50.
		return token.Scalar{Text: v.String(), Kind: token.KindNumber}, nil
	case bool:
		return token.Scalar{Text: strconv.FormatBool(v), Kind: token.KindBool}, nil
	case nil:
		return token.Scalar{Text: "null", Kind: token.KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}
