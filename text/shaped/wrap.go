// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"slices"
	"strings"
	"unicode/utf8"

	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/rivo/uniseg"
)

// Breaks is the kind of line break opportunity after a [Cluster].
type Breaks int32

const (
	// BreakNever means the line must not be broken after the cluster.
	BreakNever Breaks = iota

	// BreakAllowed means the line may be broken after the cluster.
	BreakAllowed

	// BreakMandatory means the line must be broken after the cluster,
	// as after a newline or at the end of the text.
	BreakMandatory
)

// Cluster is a user-perceived character (grapheme cluster) in the source,
// along with its line breaking properties.
type Cluster struct {
	// Range is the range of source runes in the cluster.
	Range textpos.Range

	// Break is the line break opportunity after the cluster.
	Break Breaks

	// Space is whether the cluster is whitespace, which can hang past
	// the end of a line without forcing a break.
	Space bool

	// Newline is whether the cluster is a line or paragraph separator.
	Newline bool

	// Text is the cluster content.
	Text string
}

// Segment splits the runes into grapheme clusters with line break
// opportunities, according to the Unicode rules implemented by uniseg.
func Segment(rs []rune) []Cluster {
	s := string(rs)
	var cls []Cluster
	state := -1
	pos := 0
	for len(s) > 0 {
		var c string
		var b int
		c, s, b, state = uniseg.StepString(s, state)
		n := utf8.RuneCountInString(c)
		cl := Cluster{Range: textpos.Range{pos, pos + n}, Text: c}
		switch b & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			cl.Break = BreakAllowed
		case uniseg.LineMustBreak:
			cl.Break = BreakMandatory
		}
		cl.Space = strings.TrimSpace(c) == ""
		cl.Newline = strings.ContainsAny(c, "\n\r\v\f\u0085\u2028\u2029")
		cls = append(cls, cl)
		pos += n
	}
	return cls
}

// Wrap breaks the clusters into lines that are no wider than width,
// given the advance of each cluster, and returns the source rune range
// of each line. Lines are broken at the last allowed opportunity, or
// between clusters when a single word does not fit. Whitespace may hang
// past the width. A width <= 0 only breaks at mandatory breaks.
func Wrap(cls []Cluster, adv []float32, width float32) []textpos.Range {
	var lines []textpos.Range
	ls := 0   // first cluster of the current line
	brk := -1 // last cluster of the current line with an allowed break
	w := float32(0)
	for ci, c := range cls {
		if width > 0 && !c.Space && ci > ls && w+adv[ci] > width {
			end := ci - 1
			if brk >= ls {
				end = brk
			}
			lines = append(lines, textpos.Range{cls[ls].Range.Start, cls[end].Range.End})
			ls = end + 1
			brk = -1
			w = 0
			for j := ls; j < ci; j++ {
				w += adv[j]
			}
		}
		w += adv[ci]
		switch c.Break {
		case BreakMandatory:
			lines = append(lines, textpos.Range{cls[ls].Range.Start, c.Range.End})
			ls = ci + 1
			brk = -1
			w = 0
		case BreakAllowed:
			brk = ci
		}
	}
	if ls < len(cls) {
		lines = append(lines, textpos.Range{cls[ls].Range.Start, cls[len(cls)-1].Range.End})
	}
	return lines
}

// VerticalMetrics returns the ascent, descent and leading for the given
// range of source runes.
type VerticalMetrics func(r textpos.Range) (ascent, descent, leading float32)

// WrapText wraps the source text into [GlyphLine]s no wider than width,
// given the advance of each source rune.
func WrapText(src rich.Text, adv []float32, width float32, vm VerticalMetrics) []Line {
	cls := Segment(src.Runes())
	cadv := make([]float32, len(cls))
	for ci, c := range cls {
		for i := c.Range.Start; i < c.Range.End; i++ {
			cadv[ci] += adv[i]
		}
	}
	var lines []Line
	for _, r := range Wrap(cls, cadv, width) {
		lines = append(lines, NewGlyphLine(src, r, adv, vm))
	}
	return lines
}

// NewGlyphLine returns a [GlyphLine] for the given range of the source.
func NewGlyphLine(src rich.Text, r textpos.Range, adv []float32, vm VerticalMetrics) *GlyphLine {
	gl := &GlyphLine{Src: src.Substring(r), Range: r, Advances: slices.Clone(adv[r.Start:r.End])}
	gl.Ascent, gl.Descent, gl.Leading = vm(r)
	return gl
}
