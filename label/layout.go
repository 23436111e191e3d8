// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"

	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/shaped"
)

// LineBreakModes determine how text that does not fit is broken
// and truncated.
type LineBreakModes int32

const (
	// WordWrap wraps at word boundaries and clips lines that do not fit.
	WordWrap LineBreakModes = iota

	// CharWrap wraps at character boundaries and clips lines
	// that do not fit.
	CharWrap

	// Clip clips lines that do not fit.
	Clip

	// TruncateHead replaces the start of the last line with the token.
	TruncateHead

	// TruncateTail replaces the end of the last line with the token.
	TruncateTail

	// TruncateMiddle replaces the middle of the last line with the token.
	TruncateMiddle
)

var lineBreakModesNames = [...]string{"WordWrap", "CharWrap", "Clip", "TruncateHead", "TruncateTail", "TruncateMiddle"}

func (lm LineBreakModes) String() string {
	if lm < 0 || int(lm) >= len(lineBreakModesNames) {
		return fmt.Sprintf("LineBreakModes(%d)", int(lm))
	}
	return lineBreakModesNames[lm]
}

// Truncates returns whether the mode truncates the last line.
func (lm LineBreakModes) Truncates() bool {
	return lm >= TruncateHead
}

// VerticalAlignments are the positions of the text within the bounds.
type VerticalAlignments int32

const (
	// Center centers the text vertically.
	Center VerticalAlignments = iota

	// Top puts the text at the top.
	Top

	// Bottom puts the text at the bottom.
	Bottom
)

var verticalAlignmentsNames = [...]string{"Center", "Top", "Bottom"}

func (va VerticalAlignments) String() string {
	if va < 0 || int(va) >= len(verticalAlignmentsNames) {
		return fmt.Sprintf("VerticalAlignments(%d)", int(va))
	}
	return verticalAlignmentsNames[va]
}

// layoutCache has the results of the last layout pass.
type layoutCache struct {
	// the label state that the layout was done for.
	bounds        math32.Box2
	insets        Insets
	numberOfLines int
	mode          LineBreakModes
	align         shaped.Aligns
	valign        VerticalAlignments
	shaper        shaped.Shaper
	tokenVersion  int

	// rect is the text rectangle.
	rect math32.Box2

	// frame has the lines that fit in rect.
	frame *shaped.Lines

	// draw has the lines to paint, after truncation.
	draw *shaped.Lines

	valid bool
}

// insetBounds returns the bounds less the Insets.
func (lb *Label) insetBounds(bounds math32.Box2) math32.Box2 {
	r := bounds
	r.Min.X += lb.Insets.Left
	r.Min.Y += lb.Insets.Top
	r.Max.X -= lb.Insets.Right
	r.Max.Y -= lb.Insets.Bottom
	r.Max = r.Max.Max(r.Min)
	return r
}

// TextRect returns the rectangle that the text occupies within the
// given bounds, for at most numberOfLines lines (0 for unlimited).
// The rectangle is as wide as the bounds less the Insets, and as tall
// as the lines, limited to the bounds and positioned according to the
// VerticalAlignment.
func (lb *Label) TextRect(bounds math32.Box2, numberOfLines int) math32.Box2 {
	r := lb.insetBounds(bounds)
	if lb.Shaper == nil || lb.text.Len() == 0 {
		return math32.Box2{Min: r.Min, Max: math32.Vec2(r.Max.X, r.Min.Y)}
	}
	sz := r.Size()
	all := lb.Shaper.MakeFrame(lb.text, math32.Vec2(sz.X, 0))
	n := all.NumLines()
	if numberOfLines > 0 {
		n = min(n, numberOfLines)
	}
	ht := float32(0)
	for li := range n {
		m := all.Lines[li].Metrics()
		ht += m.Ascent + m.Descent
		if li < n-1 {
			ht += m.Leading
		}
	}
	ht = min(ht, sz.Y)
	y := r.Min.Y
	switch lb.VerticalAlignment {
	case Center:
		y += (sz.Y - ht) / 2
	case Bottom:
		y += sz.Y - ht
	}
	return math32.B2(r.Min.X, y, r.Max.X, y+ht)
}

// layout redoes the layout if anything it depends on changed.
func (lb *Label) layout() *layoutCache {
	lc := &lb.lay
	if lc.valid && !lb.needsFramesetter && lc.bounds == lb.Bounds && lc.insets == lb.Insets &&
		lc.numberOfLines == lb.NumberOfLines && lc.mode == lb.LineBreakMode &&
		lc.align == lb.Align && lc.valign == lb.VerticalAlignment && lc.shaper == lb.Shaper &&
		lc.tokenVersion == lb.Truncation.version {
		return lc
	}
	lb.needsFramesetter = false
	*lc = layoutCache{bounds: lb.Bounds, insets: lb.Insets, numberOfLines: lb.NumberOfLines,
		mode: lb.LineBreakMode, align: lb.Align, valign: lb.VerticalAlignment, shaper: lb.Shaper,
		tokenVersion: lb.Truncation.version, valid: true}
	lb.Truncation.reset()
	lc.rect = lb.TextRect(lb.Bounds, lb.NumberOfLines)
	if lb.Shaper == nil {
		lc.frame = &shaped.Lines{Source: lb.text, Size: lc.rect.Size()}
		lc.draw = lc.frame
		return lc
	}
	lc.frame = lb.Shaper.MakeFrame(lb.text, lc.rect.Size())
	lines := lc.frame.Clip(lb.NumberOfLines)
	if lines.NumLines() > 0 && lines.End() < lb.text.Len() && (lb.NumberOfLines != 1 || lb.LineBreakMode.Truncates()) {
		lines = lb.truncateLines(lines, lb.text, lc.rect)
	}
	lc.draw = lines
	return lc
}

// Frame returns the lines that fit in the text rectangle, before truncation.
// These are the lines used for hit testing.
func (lb *Label) Frame() *shaped.Lines {
	return lb.layout().frame
}

// DrawLines returns the lines to paint, clipped to NumberOfLines and with
// the truncation token spliced in if the text does not fit. The origins
// are relative to the bottom left of the text rectangle: see [Label.LinePosition].
func (lb *Label) DrawLines() *shaped.Lines {
	return lb.layout().draw
}

// LinePosition returns the position of the start of the baseline of
// the given line of [Label.DrawLines], in the coordinates of the Bounds.
func (lb *Label) LinePosition(li int) math32.Vector2 {
	lc := lb.layout()
	if li < 0 || li >= lc.draw.NumLines() {
		return math32.Vector2{}
	}
	org := lc.draw.AlignedOrigin(li, lb.Align.FlushFactor())
	return math32.Vec2(lc.rect.Min.X+org.X, lc.rect.Max.Y-org.Y)
}
