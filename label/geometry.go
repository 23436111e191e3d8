// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textpos"
)

// CharacterIndex returns the index of the character of the text at the
// given point, in the coordinates of the Bounds, or [textpos.NotFound]
// if the point is not on any character.
func (lb *Label) CharacterIndex(pt math32.Vector2) int {
	if !lb.Bounds.ContainsPoint(pt) || lb.text.Len() == 0 {
		return textpos.NotFound
	}
	lc := lb.layout()
	if !lc.rect.ContainsPoint(pt) {
		return textpos.NotFound
	}
	return characterIndex(pt, lc.rect, lc.frame, lb.NumberOfLines, lb.Align.FlushFactor(), lb.text.Len())
}

// characterIndex returns the source index at pt within the frame laid out
// in rect, considering at most numberOfLines lines (0 for all), aligned
// with the given flush factor, for a text of length n.
func characterIndex(pt math32.Vector2, rect math32.Box2, frame *shaped.Lines, numberOfLines int, flush float32, n int) int {
	if frame.NumLines() == 0 {
		return textpos.NotFound
	}
	// layout coordinates are Y up from the bottom of the rect
	rel := math32.Vec2(pt.X-rect.Min.X, rect.Max.Y-pt.Y)
	nl := frame.NumLines()
	if numberOfLines > 0 {
		nl = min(nl, numberOfLines)
	}
	width := rect.Size().X
	for li := range nl {
		ln := frame.Lines[li]
		org := frame.Origins[li]
		m := ln.Metrics()
		if rel.Y < org.Y-m.Descent || rel.Y > org.Y+m.Ascent {
			continue
		}
		left := org.X + shaped.PenOffset(ln, flush, width)
		if rel.X < left || rel.X > left+m.Width {
			continue
		}
		ci := ln.RuneAtPoint(rel.Sub(math32.Vec2(left, org.Y)))
		if ci == textpos.NotFound || ci >= n {
			return textpos.NotFound
		}
		return ci
	}
	return textpos.NotFound
}
