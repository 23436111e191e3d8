// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedcell provides a deterministic [shaped.Shaper] that lays
// text out on a grid of fixed-size cells, as in a terminal: each grapheme
// cluster takes one or two cells according to its East Asian width.
// It is used wherever exact, font-independent metrics are needed,
// including tests.
package shapedcell

import (
	"cogentcore.org/richlabel/math32"
	"cogentcore.org/richlabel/text/rich"
	"cogentcore.org/richlabel/text/shaped"
	"cogentcore.org/richlabel/text/textpos"
	"github.com/mattn/go-runewidth"
)

func init() {
	if shaped.NewShaper == nil {
		shaped.NewShaper = func() shaped.Shaper { return NewShaper() }
	}
}

// Shaper is a cell grid shaper.
type Shaper struct {
	// CellWidth is the advance of a single-width cell at FontSize.
	CellWidth float32

	// Ascent and Descent are the vertical metrics at FontSize.
	Ascent, Descent float32

	// Leading is the extra space between lines at FontSize.
	Leading float32

	// FontSize is the size that the metrics are given for. Runes with a
	// [rich.Size] attribute are scaled by Size / FontSize.
	FontSize float32

	// Condition determines the cell width of each cluster.
	Condition *runewidth.Condition
}

// NewShaper returns a new cell shaper with 10 x 10 dot cells at a
// 10 dot font size, with an ascent of 8 and descent of 2.
// East Asian ambiguous widths follow the locale environment, as in runewidth.
func NewShaper() *Shaper {
	return &Shaper{CellWidth: 10, Ascent: 8, Descent: 2, FontSize: 10, Condition: runewidth.NewCondition()}
}

// scale returns the size scaling factor for the given attributes.
func (sh *Shaper) scale(attrs rich.Attributes) float32 {
	sz, ok := attrs[rich.Size].(float32)
	if !ok || sz <= 0 || sh.FontSize <= 0 {
		return 1
	}
	return sz / sh.FontSize
}

// advances returns the advance of each rune in the text. The cell width
// of a cluster is all assigned to its first rune.
func (sh *Shaper) advances(tx rich.Text) []float32 {
	adv := make([]float32, tx.Len())
	for _, cl := range shaped.Segment(tx.Runes()) {
		if cl.Newline {
			continue
		}
		attrs, _ := tx.AttributesAt(cl.Range.Start)
		cells := sh.Condition.StringWidth(cl.Text)
		adv[cl.Range.Start] = float32(cells) * sh.CellWidth * sh.scale(attrs)
	}
	return adv
}

// verticalMetrics returns the metrics for the largest scale in the range.
func (sh *Shaper) verticalMetrics(tx rich.Text) shaped.VerticalMetrics {
	return func(r textpos.Range) (float32, float32, float32) {
		sc := float32(0)
		for sr, attrs := range tx.Spans() {
			if sr.Intersect(r).Len() > 0 {
				sc = max(sc, sh.scale(attrs))
			}
		}
		if sc == 0 {
			sc = 1
		}
		return sh.Ascent * sc, sh.Descent * sc, sh.Leading * sc
	}
}

func (sh *Shaper) MakeFrame(tx rich.Text, size math32.Vector2) *shaped.Lines {
	lines := shaped.WrapText(tx, sh.advances(tx), size.X, sh.verticalMetrics(tx))
	return shaped.LayoutFrame(tx, lines, size)
}

func (sh *Shaper) MakeLine(tx rich.Text) shaped.Line {
	return shaped.NewGlyphLine(tx, textpos.Range{0, tx.Len()}, sh.advances(tx), sh.verticalMetrics(tx))
}

func (sh *Shaper) TruncateLine(ln shaped.Line, width float32, side shaped.Truncations, anchor int, token shaped.Line) shaped.Line {
	return shaped.TruncateLine(ln, width, side, anchor, token)
}
