// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides types for positions and ranges within text,
// in terms of rune indexes into the source.
package textpos

import "fmt"

// NotFound is the index returned when no rune corresponds to a query,
// e.g., a point outside of any laid out line.
const NotFound = -1

// Range defines a range with a start and end index, where end is typically
// exclusive, as in standard slice indexing and for loop conventions.
type Range struct {
	// Start is the start index of the range.
	Start int

	// End is the end index of the range.
	End int
}

// R returns a new [Range] for a start,end region.
func R(start, end int) Range {
	return Range{start, end}
}

// RL returns a new [Range] from a location and length, as used by
// typical (offset, count) string range conventions.
func RL(loc, length int) Range {
	return Range{loc, loc + length}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns true if range contains given index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Intersect returns the intersection of two ranges.
// If they do not overlap, then the Start and End will be -1
func (r Range) Intersect(o Range) Range {
	o.Start = max(o.Start, r.Start)
	o.End = min(o.End, r.End)
	if o.Len() <= 0 {
		return Range{-1, -1}
	}
	return o
}

// InBounds returns true if the range is non-empty and lies
// entirely within [0, n).
func (r Range) InBounds(n int) bool {
	return r.Start >= 0 && r.End <= n && r.Len() > 0
}
