// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "cogentcore.org/richlabel/text/textpos"

// Truncations specifies which side of a line is dropped to make room
// for a truncation token.
type Truncations int32

const (
	// TruncateEnd drops runes from the end of the line.
	TruncateEnd Truncations = iota

	// TruncateStart drops runes from the start of the line.
	TruncateStart

	// TruncateMiddle drops runes around an anchor in the middle of the line.
	TruncateMiddle
)

var truncationNames = [...]string{"End", "Start", "Middle"}

func (tr Truncations) String() string {
	if tr < 0 || int(tr) >= len(truncationNames) {
		return "Truncations(?)"
	}
	return truncationNames[tr]
}

// TruncateGlyphs returns a line that fits within the given width,
// made by dropping runes of ln from the given side and inserting the token
// line where they were. For [TruncateMiddle], runes are dropped outward from
// the anchor, which is an index in the same space as ln.SourceRange().
// If ln already fits it is returned as is. It returns nil if the token by
// itself is wider than width.
func TruncateGlyphs(ln *GlyphLine, width float32, side Truncations, anchor int, token *GlyphLine) *GlyphLine {
	if ln.Metrics().Width <= width {
		return ln
	}
	tw := token.Metrics().Width
	if tw > width {
		return nil
	}
	avail := width - tw
	n := len(ln.Advances)
	head, tail := 0, n // kept: [0,head) and [tail,n)
	switch side {
	case TruncateStart:
		w := float32(0)
		for tail > 0 && w+ln.Advances[tail-1] <= avail {
			tail--
			w += ln.Advances[tail]
		}
	case TruncateMiddle:
		a := min(max(anchor-ln.Range.Start, 0), n)
		head, tail = a, a
		w := ln.width(0, n)
		left := true
		for w > avail && (head > 0 || tail < n) {
			if (left && head > 0) || tail == n {
				head--
				w -= ln.Advances[head]
			} else {
				w -= ln.Advances[tail]
				tail++
			}
			left = !left
		}
	default:
		w := float32(0)
		for head < n && w+ln.Advances[head] <= avail {
			w += ln.Advances[head]
			head++
		}
	}
	tl := &GlyphLine{Range: ln.Range, Ascent: max(ln.Ascent, token.Ascent), Descent: max(ln.Descent, token.Descent), Leading: max(ln.Leading, token.Leading)}
	tl.appendFrom(ln, textpos.Range{0, head})
	tl.appendToken(token)
	tl.appendFrom(ln, textpos.Range{tail, n})
	return tl
}

// appendFrom appends the runes in the given local range of src.
func (gl *GlyphLine) appendFrom(src *GlyphLine, r textpos.Range) {
	if r.Len() <= 0 {
		return
	}
	gl.Src.Append(src.Src.Substring(r))
	gl.Advances = append(gl.Advances, src.Advances[r.Start:r.End]...)
	for i := r.Start; i < r.End; i++ {
		gl.Index = append(gl.Index, src.sourceIndex(i))
	}
}

// appendToken appends all of the token runes, which have no source index.
func (gl *GlyphLine) appendToken(tok *GlyphLine) {
	gl.Src.Append(tok.Src)
	gl.Advances = append(gl.Advances, tok.Advances...)
	for range tok.Advances {
		gl.Index = append(gl.Index, textpos.NotFound)
	}
}
