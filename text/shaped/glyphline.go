// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textpos"
)

// GlyphLine is a [Line] represented by the horizontal advance of each
// rune, which is all that hit testing and truncation need. It is the
// Line type produced by the standard shapers.
type GlyphLine struct {
	// Src is the styled text rendered on this line.
	Src rich.Text

	// Range is the range of source runes shaped into this line.
	Range textpos.Range

	// Advances has the horizontal advance for each rune in Src.
	Advances []float32

	// Index maps each rune in Src to its source index, with
	// [textpos.NotFound] for inserted runes such as a truncation token.
	// If nil, rune i is at source index Range.Start + i.
	Index []int

	// Ascent, Descent and Leading are the vertical metrics: see [Metrics].
	Ascent, Descent, Leading float32
}

func (gl *GlyphLine) SourceRange() textpos.Range { return gl.Range }

func (gl *GlyphLine) Source() rich.Text { return gl.Src }

func (gl *GlyphLine) Metrics() Metrics {
	m := Metrics{Ascent: gl.Ascent, Descent: gl.Descent, Leading: gl.Leading}
	m.Width = gl.width(0, len(gl.Advances))
	rs := gl.Src.Runes()
	for i := len(rs) - 1; i >= 0 && i < len(gl.Advances); i-- {
		if !unicode.IsSpace(rs[i]) {
			break
		}
		m.TrailingWhitespace += gl.Advances[i]
	}
	return m
}

// width returns the total advance of local runes in [st, ed).
func (gl *GlyphLine) width(st, ed int) float32 {
	w := float32(0)
	for _, a := range gl.Advances[st:ed] {
		w += a
	}
	return w
}

// sourceIndex returns the source index for local rune i.
func (gl *GlyphLine) sourceIndex(i int) int {
	if gl.Index != nil {
		return gl.Index[i]
	}
	return gl.Range.Start + i
}

// RuneAtPoint returns the source index of the rune whose advance box
// contains pt.X. Only the X coordinate is used.
func (gl *GlyphLine) RuneAtPoint(pt math32.Vector2) int {
	n := len(gl.Advances)
	if n == 0 {
		return textpos.NotFound
	}
	if pt.X < 0 {
		return gl.sourceIndex(0)
	}
	x := float32(0)
	for i, a := range gl.Advances {
		x += a
		if pt.X < x {
			return gl.sourceIndex(i)
		}
	}
	return gl.sourceIndex(n - 1)
}
