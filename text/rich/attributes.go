// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"maps"
	"reflect"
)

// Key is the name of a styling attribute, e.g., [Foreground] or [Link].
type Key string

// Standard attribute keys. Any other Key may be used as needed:
// the shapers only look at the keys they understand.
const (
	// Font is the font family name, as a string.
	Font Key = "font"

	// Size is the font size in dots, as a float32.
	Size Key = "size"

	// Weight is the font weight, as a float32 (400 = normal, 700 = bold).
	Weight Key = "weight"

	// Foreground is the text fill color, as a [color.Color].
	Foreground Key = "foreground"

	// Background is the text background color, as a [color.Color].
	Background Key = "background"

	// Underline is whether text is underlined, as a bool.
	Underline Key = "underline"

	// Link marks text as a hyperlink, with a *url.URL or string value.
	Link Key = "link"
)

// Attributes is a mapping of style key to value, applied to a span of
// runes in a [Text]. A nil Attributes is an empty map.
type Attributes map[Key]any

// Clone returns a copy of the attributes. The values are not copied.
func (as Attributes) Clone() Attributes {
	if len(as) == 0 {
		return nil
	}
	return maps.Clone(as)
}

// Equal returns true if both have the same keys with deeply equal values.
// Nil and empty attributes are equal.
func (as Attributes) Equal(o Attributes) bool {
	if len(as) != len(o) {
		return false
	}
	for k, v := range as {
		ov, ok := o[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Merge returns a new Attributes with the given attributes
// applied over these ones.
func (as Attributes) Merge(over Attributes) Attributes {
	if len(over) == 0 {
		return as.Clone()
	}
	na := make(Attributes, len(as)+len(over))
	maps.Copy(na, as)
	maps.Copy(na, over)
	return na
}
