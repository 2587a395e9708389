/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"bytes"
	"encoding/json"

	"bennypowers.dev/tokenvars/convert/formatter"
	"bennypowers.dev/tokenvars/token"
)

// Formatter outputs a flat JSON object keyed by declaration name.
// Keys keep declaration order; a repeated name appears once per declaration.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts declarations to flat key-value JSON.
// JSON has no comments, so opts.Header is ignored.
func (f *Formatter) Format(decls []token.Declaration, opts formatter.Options) ([]byte, error) {
	decls = formatter.ApplyValueCase(decls, opts.ValueCase)

	if len(decls) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, d := range decls {
		key, err := json.Marshal(d.Name)
		if err != nil {
			return nil, err
		}
		value, err := jsonValue(d)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(decls)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// jsonValue encodes numbers, booleans and null as JSON literals when their
// source text is valid JSON, and everything else as a string.
func jsonValue(d token.Declaration) ([]byte, error) {
	switch d.Kind {
	case token.KindNumber, token.KindBool, token.KindNull:
		raw := []byte(d.Value)
		var probe any
		if json.Unmarshal(raw, &probe) == nil {
			if _, isString := probe.(string); !isString {
				return raw, nil
			}
		}
	}
	return json.Marshal(d.Value)
}
