// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides styled text: a sequence of runes partitioned
// into spans that share a common set of [Attributes].
package rich

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/richlabel/text/textpos"
)

// Text is the basic rich text representation, with the raw unicode runes
// of the source and a list of spans that cover them contiguously, each of
// which carries the styling attributes for its runes. Indexing is always
// in terms of runes in the source.
//
// Text has value semantics for reading, but the mutating methods modify
// the underlying storage: use [Text.Clone] to keep a snapshot.
type Text struct {
	runes []rune
	spans []span
}

// span is a run of runes ending (exclusive) at end, sharing attrs.
type span struct {
	end   int
	attrs Attributes
}

// NewText returns a new [Text] with the given string, all styled
// with the given attributes, which can be nil.
func NewText(s string, attrs Attributes) Text {
	return NewTextRunes([]rune(s), attrs)
}

// NewTextRunes returns a new [Text] with a copy of the given runes, all
// styled with the given attributes, which can be nil.
func NewTextRunes(r []rune, attrs Attributes) Text {
	tx := Text{}
	tx.AddSpan(attrs, r)
	return tx
}

// Len returns the total number of runes in this Text.
func (tx Text) Len() int {
	return len(tx.runes)
}

// String returns the raw text without styling.
func (tx Text) String() string {
	return string(tx.runes)
}

// Runes returns the raw runes. The returned slice points directly
// into the Text and must not be modified.
func (tx Text) Runes() []rune {
	return tx.runes
}

// At returns the rune at given index, or 0 if it is out of range.
func (tx Text) At(i int) rune {
	if i < 0 || i >= len(tx.runes) {
		return 0
	}
	return tx.runes[i]
}

// NumSpans returns the number of styled spans.
func (tx Text) NumSpans() int {
	return len(tx.spans)
}

// Range returns the start, end range of rune indexes for given span index.
func (tx Text) Range(si int) textpos.Range {
	if si < 0 || si >= len(tx.spans) {
		return textpos.Range{-1, -1}
	}
	st := 0
	if si > 0 {
		st = tx.spans[si-1].end
	}
	return textpos.Range{st, tx.spans[si].end}
}

// Spans returns an iterator over the rune range and attributes of each span.
func (tx Text) Spans() iter.Seq2[textpos.Range, Attributes] {
	return func(yield func(textpos.Range, Attributes) bool) {
		st := 0
		for _, s := range tx.spans {
			if !yield(textpos.Range{st, s.end}, s.attrs) {
				return
			}
			st = s.end
		}
	}
}

// spanAt returns the span index containing rune index i, or -1.
func (tx Text) spanAt(i int) int {
	if i < 0 || i >= len(tx.runes) {
		return -1
	}
	si, found := slices.BinarySearchFunc(tx.spans, i, func(s span, i int) int {
		if s.end <= i {
			return -1
		}
		return 1
	})
	if found || si >= len(tx.spans) {
		return -1
	}
	return si
}

// AttributesAt returns the attributes in effect at given rune index, along
// with the effective range of the span that has them. Returns nil and
// an empty range if the index is out of range. The returned map must not
// be modified.
func (tx Text) AttributesAt(i int) (Attributes, textpos.Range) {
	si := tx.spanAt(i)
	if si < 0 {
		return nil, textpos.Range{}
	}
	return tx.spans[si].attrs, tx.Range(si)
}

// AddSpan adds a span to the end of the Text using the given attributes
// and a copy of the given runes.
func (tx *Text) AddSpan(attrs Attributes, r []rune) *Text {
	if len(r) == 0 {
		return tx
	}
	tx.runes = append(tx.runes, r...)
	n := len(tx.spans)
	if n > 0 && tx.spans[n-1].attrs.Equal(attrs) {
		tx.spans[n-1].end = len(tx.runes)
		return tx
	}
	tx.spans = append(tx.spans, span{end: len(tx.runes), attrs: attrs.Clone()})
	return tx
}

// Append appends all of the spans of the other text to this one.
func (tx *Text) Append(o Text) *Text {
	for r, attrs := range o.Spans() {
		tx.AddSpan(attrs, o.runes[r.Start:r.End])
	}
	return tx
}

// split ensures that a span boundary exists at rune index i.
func (tx *Text) split(i int) {
	si := tx.spanAt(i)
	if si < 0 || tx.Range(si).Start == i {
		return
	}
	ns := span{end: i, attrs: tx.spans[si].attrs.Clone()}
	tx.spans = slices.Insert(tx.spans, si, ns)
}

// AddAttributes applies the given attributes over the existing ones for
// all runes in the given range. It returns false without changing anything
// if the range is empty or not entirely within the text.
func (tx *Text) AddAttributes(attrs Attributes, r textpos.Range) bool {
	if !r.InBounds(tx.Len()) {
		return false
	}
	if len(attrs) == 0 {
		return true
	}
	tx.split(r.Start)
	tx.split(r.End)
	st := 0
	for si := range tx.spans {
		s := &tx.spans[si]
		if st >= r.Start && s.end <= r.End {
			s.attrs = s.attrs.Merge(attrs)
		}
		st = s.end
	}
	tx.compact()
	return true
}

// compact merges adjacent spans with equal attributes.
func (tx *Text) compact() {
	out := tx.spans[:0]
	for _, s := range tx.spans {
		n := len(out)
		if n > 0 && out[n-1].attrs.Equal(s.attrs) {
			out[n-1].end = s.end
			continue
		}
		out = append(out, s)
	}
	tx.spans = out
}

// Substring returns a new Text with the runes and styles in given range,
// clamped to the text bounds.
func (tx Text) Substring(r textpos.Range) Text {
	r = r.Intersect(textpos.Range{0, tx.Len()})
	nt := Text{}
	if r.Len() <= 0 {
		return nt
	}
	for sr, attrs := range tx.Spans() {
		ir := sr.Intersect(r)
		if ir.Len() <= 0 {
			continue
		}
		nt.AddSpan(attrs, tx.runes[ir.Start:ir.End])
	}
	return nt
}

// Clone returns a deep copy of the text. Attribute values are shared.
func (tx Text) Clone() Text {
	nt := Text{runes: slices.Clone(tx.runes), spans: make([]span, len(tx.spans))}
	for i, s := range tx.spans {
		nt.spans[i] = span{end: s.end, attrs: s.attrs.Clone()}
	}
	return nt
}

// Equal returns true if both texts have the same runes with the same
// attributes at every index.
func (tx Text) Equal(o Text) bool {
	if !slices.Equal(tx.runes, o.runes) {
		return false
	}
	ai, bi := 0, 0
	for ai < len(tx.spans) && bi < len(o.spans) {
		if !tx.spans[ai].attrs.Equal(o.spans[bi].attrs) {
			return false
		}
		ae, be := tx.spans[ai].end, o.spans[bi].end
		if ae <= be {
			ai++
		}
		if be <= ae {
			bi++
		}
	}
	return true
}

// DebugString returns a representation of the spans with their attributes.
func (tx Text) DebugString() string {
	var b strings.Builder
	for r, attrs := range tx.Spans() {
		b.WriteString(r.String())
		b.WriteString(" ")
		b.WriteString(string(tx.runes[r.Start:r.End]))
		for _, k := range slices.Sorted(maps.Keys(attrs)) {
			b.WriteString(" " + string(k))
		}
		b.WriteString("\n")
	}
	return b.String()
}
