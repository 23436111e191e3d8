// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textpos"
)

// Metrics are the typographic bounds of a shaped [Line].
// All values are in dots and are non-negative.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the line.
	Descent float32

	// Leading is the extra gap added below the line before the next one.
	Leading float32

	// Width is the total advance width of the line.
	Width float32

	// TrailingWhitespace is the advance width of whitespace at the end
	// of the line, which is ignored for alignment.
	TrailingWhitespace float32
}

// Height returns the distance from one baseline to the next.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent + m.Leading
}

// Line is one line of shaped text. It is produced once per layout pass
// by a [Shaper] and is immutable after that.
type Line interface {
	// SourceRange is the range of runes in the source text that were
	// shaped into this line.
	SourceRange() textpos.Range

	// Source is the styled text that is rendered for this line, which
	// for a truncated line differs from the original source range.
	Source() rich.Text

	// Metrics returns the typographic bounds of the line.
	Metrics() Metrics

	// RuneAtPoint returns the source rune index at the given point, relative
	// to the line's pen position on the baseline, with Y up. Points beyond
	// either end return the first or last rune. It returns
	// [textpos.NotFound] if there is no source rune there.
	RuneAtPoint(pt math32.Vector2) int
}

// Lines is a frame of shaped lines laid out within a rectangle.
// This is the unit that hit testing and painting consume.
//
// Origins are in layout coordinates: the origin is the bottom left of the
// frame rectangle and Y increases upward, with each origin on the baseline
// of its line. Horizontal alignment is not included in the origins: see
// [PenOffset] and [Lines.AlignedOrigin].
type Lines struct {
	// Source is the original input source that generated this set of lines.
	Source rich.Text

	// Lines are the shaped lines, in order.
	Lines []Line

	// Origins are the baseline origins for each of the Lines.
	Origins []math32.Vector2

	// Size is the size of the frame rectangle.
	Size math32.Vector2
}

// NumLines returns the number of lines in the frame.
func (ls *Lines) NumLines() int {
	if ls == nil {
		return 0
	}
	return len(ls.Lines)
}

// Clone returns a copy of the Lines, with new Lines and Origins slices
// that still point to the same underlying Line values.
func (ls *Lines) Clone() *Lines {
	nls := &Lines{}
	*nls = *ls
	nls.Lines = slices.Clone(ls.Lines)
	nls.Origins = slices.Clone(ls.Origins)
	return nls
}

// Clip returns a copy limited to at most n lines, if n > 0.
func (ls *Lines) Clip(n int) *Lines {
	nls := ls.Clone()
	if n > 0 && n < len(nls.Lines) {
		nls.Lines = nls.Lines[:n]
		nls.Origins = nls.Origins[:n]
	}
	return nls
}

// End returns the source index just past the last line, which is
// less than Source.Len() when the text did not fit in the frame.
func (ls *Lines) End() int {
	if ls.NumLines() == 0 {
		return 0
	}
	return ls.Lines[len(ls.Lines)-1].SourceRange().End
}

// Height returns the total height used by the lines, from the top
// of the frame to the bottom of the last line.
func (ls *Lines) Height() float32 {
	n := ls.NumLines()
	if n == 0 {
		return 0
	}
	return ls.Size.Y - (ls.Origins[n-1].Y - ls.Lines[n-1].Metrics().Descent)
}

// AlignedOrigin returns the origin of line li including the pen
// offset for the given flush factor.
func (ls *Lines) AlignedOrigin(li int, flush float32) math32.Vector2 {
	org := ls.Origins[li]
	org.X += PenOffset(ls.Lines[li], flush, ls.Size.X)
	return org
}

func (ls *Lines) String() string {
	var b strings.Builder
	for li, ln := range ls.Lines {
		fmt.Fprintf(&b, "#### Line: %d %v origin: %v\n", li, ln.SourceRange(), ls.Origins[li])
		b.WriteString(ln.Source().String())
		b.WriteString("\n")
	}
	return b.String()
}

// LayoutFrame positions the given lines top-down within a frame of the
// given size, keeping only the lines that fit entirely. A size with
// Y <= 0 is unlimited in height.
func LayoutFrame(src rich.Text, lines []Line, size math32.Vector2) *Lines {
	ls := &Lines{Source: src, Size: size}
	if size.Y <= 0 {
		ht := float32(0)
		for _, ln := range lines {
			ht += ln.Metrics().Height()
		}
		ls.Size.Y = ht
	}
	y := ls.Size.Y
	for li, ln := range lines {
		m := ln.Metrics()
		if li > 0 {
			y -= lines[li-1].Metrics().Leading
		}
		y -= m.Ascent
		if y-m.Descent < -0.001 {
			break
		}
		ls.Lines = append(ls.Lines, ln)
		ls.Origins = append(ls.Origins, math32.Vec2(0, y))
		y -= m.Descent
	}
	return ls
}
