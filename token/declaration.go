/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Declaration is one emitted variable: a sanitized name and its literal value.
type Declaration struct {
	// Name is the variable name without sigil (e.g., "color-primary").
	Name string `json:"name"`

	// Value is the literal value text.
	Value string `json:"value"`

	// Kind is the kind of the source scalar. Lists report KindString.
	Kind Kind `json:"-"`
}

// String renders the declaration as an SCSS variable assignment.
func (d Declaration) String() string {
	return "$" + d.Name + ": " + d.Value + ";"
}
