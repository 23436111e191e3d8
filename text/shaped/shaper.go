// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped defines the boundary with a text shaping engine:
// shaped [Line]s with typographic metrics, frames of positioned lines,
// and the [Shaper] interface that produces them.
package shaped

import (
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
)

// NewShaper returns the default type of shaper, which is set by
// importing one of the shaper packages.
var NewShaper func() Shaper

// Shaper is a text shaping system that can shape the layout of [rich.Text],
// including line wrapping and truncation.
type Shaper interface {

	// MakeFrame wraps and shapes the given text into lines that fit
	// within the given frame size, stopping at the first line that
	// does not fit vertically. A size with Y <= 0 is unlimited in height.
	MakeFrame(tx rich.Text, size math32.Vector2) *Lines

	// MakeLine shapes the given text as a single line, without wrapping.
	MakeLine(tx rich.Text) Line

	// TruncateLine returns a version of ln that fits within width, with
	// runes dropped from the given side and the token line inserted.
	// The anchor is the source index around which [TruncateMiddle]
	// drops runes. It returns nil if the token does not fit in width.
	TruncateLine(ln Line, width float32, side Truncations, anchor int, token Line) Line
}

// TruncateLine implements [Shaper.TruncateLine] for shapers that
// produce [GlyphLine]s. It returns nil for other line types.
func TruncateLine(ln Line, width float32, side Truncations, anchor int, token Line) Line {
	gl, ok := ln.(*GlyphLine)
	if !ok {
		return nil
	}
	tk, ok := token.(*GlyphLine)
	if !ok {
		return nil
	}
	tl := TruncateGlyphs(gl, width, side, anchor, tk)
	if tl == nil {
		return nil
	}
	return tl
}
