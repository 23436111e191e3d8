// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

// Aligns specifies the horizontal alignment of lines within a frame.
type Aligns int32

const (
	// Start aligns lines to the left edge.
	Start Aligns = iota

	// Center centers lines.
	Center

	// End aligns lines to the right edge.
	End
)

var alignNames = [...]string{"Start", "Center", "End"}

func (al Aligns) String() string {
	if al < 0 || int(al) >= len(alignNames) {
		return "Aligns(?)"
	}
	return alignNames[al]
}

// FlushFactor returns the proportion of free width placed before a line:
// 0 for Start, 0.5 for Center and 1 for End.
func (al Aligns) FlushFactor() float32 {
	switch al {
	case Center:
		return 0.5
	case End:
		return 1
	}
	return 0
}

// PenOffset returns the horizontal offset at which to start drawing the
// given line so that it is flush according to the given factor within
// the given width. Trailing whitespace does not count toward the line width,
// and the offset is never negative.
func PenOffset(ln Line, flush float32, width float32) float32 {
	if flush <= 0 {
		return 0
	}
	m := ln.Metrics()
	lw := m.Width - m.TrailingWhitespace
	return max(0, (width-lw)*min(flush, 1))
}
